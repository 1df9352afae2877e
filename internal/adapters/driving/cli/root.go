// Package cli implements the Ansera command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ansera/internal/adapters/driven/generate/extractive"
	"github.com/custodia-labs/ansera/internal/adapters/driven/generate/openai"
	"github.com/custodia-labs/ansera/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ansera/internal/chunkers"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/core/ports/driving"
	"github.com/custodia-labs/ansera/internal/core/services"
	"github.com/custodia-labs/ansera/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

// Wired services, shared by all commands.
var (
	configStore   driven.ConfigStore
	generator     driven.Generator
	corpusService driving.CorpusService
	retrieval     driving.RetrievalService
	answerService driving.AnswerService
)

var rootCmd = &cobra.Command{
	Use:   "ansera",
	Short: "Answer questions against a local document corpus",
	Long: `Ansera chunks heterogeneous documents (markdown, FAQ, tabular records),
ranks the chunks against a question with a hybrid lexical score, and
assembles a cited, confidence-labelled answer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initServices()
	},
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose pipeline logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.ansera)")
}

// initServices wires the stores and core services for a run.
func initServices() error {
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = store

	if flagVerbose || configStore.GetBool("verbose") {
		logger.SetVerbose(true)
	}

	generator, err = buildGenerator(configStore)
	if err != nil {
		return err
	}
	logger.Debug("Generator: %s", generator.Name())

	corpusStore := memory.NewCorpusStore()
	retrievalService := services.NewRetrievalService(corpusStore)

	corpusService = services.NewCorpusService(chunkers.Defaults(), corpusStore)
	retrieval = retrievalService
	answerService = services.NewAnswerService(retrievalService, generator)

	return nil
}

// buildGenerator selects the answer generator from configuration.
// The deterministic extractive generator is the default; "openai"
// requires an API key in the config file.
func buildGenerator(cfg driven.ConfigStore) (driven.Generator, error) {
	switch name := cfg.GetString("generator"); name {
	case "", "extractive":
		return extractive.New(), nil
	case "openai":
		return openai.New(openai.Config{
			APIKey: cfg.GetString("openai.api_key"),
			Model:  cfg.GetString("openai.model"),
		})
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}

func closeServices() {
	if generator != nil {
		_ = generator.Close()
	}
}
