package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "stress; sleep", String("stress; sleep").Text())
	assert.Equal(t, "3", Number(3).Text())
	assert.Equal(t, "2.5", Number(2.5).Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "", Value{}.Text())
}

func TestValue_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		json string
	}{
		{"string", String("catalog"), `"catalog"`},
		{"number", Number(3), `3`},
		{"bool", Bool(true), `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var out Value
			require.NoError(t, json.Unmarshal(data, &out))
			assert.Equal(t, tt.in, out)
		})
	}
}

func TestValue_UnmarshalRejectsComposites(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"nested": 1}`), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = json.Unmarshal([]byte(`[1, 2]`), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMetadata_Merge(t *testing.T) {
	base := Metadata{"category": String("products"), "type": String("catalog")}
	overlay := Metadata{"type": String("row"), "name": String("Triphala")}

	merged := base.Merge(overlay)

	assert.Equal(t, "products", merged["category"].Text())
	assert.Equal(t, "row", merged["type"].Text(), "overlay wins on collision")
	assert.Equal(t, "Triphala", merged["name"].Text())

	// Inputs stay untouched.
	assert.Equal(t, "catalog", base["type"].Text())
	assert.Len(t, overlay, 2)
}

func TestMetadata_Blob(t *testing.T) {
	m := Metadata{
		"b_key": String("Stress Resilience"),
		"a_key": Number(2),
		"c_key": Bool(true),
	}

	// Sorted-key order, lowercased, space-joined.
	assert.Equal(t, "2 stress resilience true", m.Blob())

	// Deterministic across calls.
	assert.Equal(t, m.Blob(), m.Blob())

	assert.Equal(t, "", Metadata{}.Blob())
	assert.Equal(t, "", Metadata(nil).Blob())
}

func TestMetadata_Clone(t *testing.T) {
	m := Metadata{"k": String("v")}
	c := m.Clone()
	c["k"] = String("changed")
	assert.Equal(t, "v", m["k"].Text())

	assert.Nil(t, Metadata(nil).Clone())
}
