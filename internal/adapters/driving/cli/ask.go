package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera/internal/corpusfile"
)

var (
	askCorpusPath string
	askJSON       bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question with citations",
	Long: `Loads the corpus file, retrieves the best-matching chunks for the
question, and prints a cited answer with a confidence label.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askCorpusPath, "corpus", "c", "", "path to the corpus JSON file (required)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	_ = askCmd.MarkFlagRequired("corpus")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	docs, err := corpusfile.Read(askCorpusPath)
	if err != nil {
		return err
	}
	if _, err := corpusService.Load(cmd.Context(), docs); err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	answer, err := answerService.Answer(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printAnswer(cmd, answer)
	return nil
}
