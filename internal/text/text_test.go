package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits on punctuation",
			input: "Can Ayurveda help with stress and sleep?",
			want:  []string{"can", "ayurveda", "help", "with", "stress", "and", "sleep"},
		},
		{
			name:  "keeps digits and underscores",
			input: "product_id KA-P002",
			want:  []string{"product_id", "ka", "p002"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "punctuation only",
			input: "!?., --- ...",
			want:  nil,
		},
		{
			name:  "order preserved with duplicates",
			input: "sleep stress sleep",
			want:  []string{"sleep", "stress", "sleep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Pure(t *testing.T) {
	input := "The Tridosha Model (Vata, Pitta, Kapha)"
	assert.Equal(t, Tokenize(input), Tokenize(input))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "question with punctuation",
			input: "Is Ayurveda safe to combine with modern medicine?",
			want:  "is_ayurveda_safe_to_combine_with_modern_medicine",
		},
		{
			name:  "collapses separator runs",
			input: "The Tridosha Model (Vata, Pitta, Kapha)",
			want:  "the_tridosha_model_vata_pitta_kapha",
		},
		{
			name:  "strips leading and trailing separators",
			input: "  -- hello --  ",
			want:  "hello",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "no alphanumerics",
			input: "––!!––",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Is Ayurveda safe to combine with modern medicine?",
		"already_slugified_string",
		"MIXED Case -- With 123 Numbers",
		"",
	}
	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", input)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on terminators",
			input: "First sentence. Second one! Third?",
			want:  []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name:  "trailing text without terminator",
			input: "Complete sentence. trailing fragment",
			want:  []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name:  "terminator without following space stays glued",
			input: "Version 1.2 shipped. Done.",
			want:  []string{"Version 1.2 shipped.", "Done."},
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
