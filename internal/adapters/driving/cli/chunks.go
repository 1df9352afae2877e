package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera/internal/corpusfile"
)

var (
	chunksCorpusPath string
	chunksJSON       bool
)

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "List the chunks a corpus file produces",
	Long: `Chunks the corpus file and lists every (doc, section) key with its
content size. Useful for checking how documents were split.`,
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().StringVarP(&chunksCorpusPath, "corpus", "c", "", "path to the corpus JSON file (required)")
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output chunks as JSON")
	_ = chunksCmd.MarkFlagRequired("corpus")
	rootCmd.AddCommand(chunksCmd)
}

// chunkListing is the JSON projection of one chunk.
type chunkListing struct {
	DocID     string `json:"doc_id"`
	SectionID string `json:"section_id"`
	Size      int    `json:"size"`
}

func runChunks(cmd *cobra.Command, _ []string) error {
	docs, err := corpusfile.Read(chunksCorpusPath)
	if err != nil {
		return err
	}
	count, err := corpusService.Load(cmd.Context(), docs)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	chunks := corpusService.Chunks()

	if chunksJSON {
		listings := make([]chunkListing, 0, len(chunks))
		for _, c := range chunks {
			listings = append(listings, chunkListing{
				DocID:     c.DocID,
				SectionID: c.SectionID,
				Size:      len(c.Content),
			})
		}
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal chunks: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%d chunks:\n", count)
	for _, c := range chunks {
		cmd.Printf("  %s | %s (%d bytes)\n", c.DocID, c.SectionID, len(c.Content))
	}
	return nil
}
