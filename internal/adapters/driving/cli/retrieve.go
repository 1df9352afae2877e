package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera/internal/corpusfile"
)

var (
	retrieveCorpusPath string
	retrieveLimit      int
	retrieveJSON       bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Show the ranked chunks for a query",
	Long: `Scores every chunk of the corpus against the query and prints the
ranked results. Useful for inspecting why an answer cited what it did.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().StringVarP(&retrieveCorpusPath, "corpus", "c", "", "path to the corpus JSON file (required)")
	retrieveCmd.Flags().IntVarP(&retrieveLimit, "limit", "n", 4, "maximum number of results")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output results as JSON")
	_ = retrieveCmd.MarkFlagRequired("corpus")
	rootCmd.AddCommand(retrieveCmd)
}

// rankedResult is the JSON projection of one retrieval result.
type rankedResult struct {
	DocID     string  `json:"doc_id"`
	SectionID string  `json:"section_id"`
	Score     float64 `json:"score"`
	Content   string  `json:"content"`
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	query := args[0]

	limit := retrieveLimit
	if !cmd.Flags().Changed("limit") {
		if k := configStore.GetInt("top_k"); k > 0 {
			limit = k
		}
	}

	docs, err := corpusfile.Read(retrieveCorpusPath)
	if err != nil {
		return err
	}
	if _, err := corpusService.Load(cmd.Context(), docs); err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	results := retrieval.Retrieve(query, limit)

	if retrieveJSON {
		ranked := make([]rankedResult, 0, len(results))
		for _, r := range results {
			ranked = append(ranked, rankedResult{
				DocID:     r.Chunk.DocID,
				SectionID: r.Chunk.SectionID,
				Score:     r.Score,
				Content:   r.Chunk.Content,
			})
		}
		data, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s | %s (%.2f)\n", i+1, r.Chunk.DocID, r.Chunk.SectionID, r.Score)
		snippet := r.Chunk.Content
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		cmd.Println(snippetStyle.Render("      " + snippet))
		cmd.Println()
	}
	return nil
}
