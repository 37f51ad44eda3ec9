package cli

import (
	"fmt"
	"time"

	"github.com/afuentes/centinela/internal/config"
	"github.com/afuentes/centinela/internal/gemini"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	outputFlag  string
	modelFlag   string
	timeoutFlag time.Duration
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

// newGateway builds the model gateway from the loaded configuration.
// Replaceable in tests to avoid network calls.
var newGateway = func(cfg *config.Config) *gemini.Gateway {
	client := gemini.NewHTTPClient(cfg.ResolveAPIKey())
	return gemini.NewGateway(client, cfg.ResolveAPIKey, cfg.Model)
}

var rootCmd = &cobra.Command{
	Use:   "centinela",
	Short: "Centinela — panel de cumplimiento de políticas con auditoría por IA",
	Long: `Centinela tracks policy violations across reviewed applications and
runs expert audits over submitted code using a generative model. It
ships a violations dashboard, an external scanner, and reporting in
several output formats.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all existing commands
		// pick up config-file and env-var defaults transparently.
		outputFlag = cfg.OutputFormat
		modelFlag = cfg.Model
		timeoutFlag = cfg.Timeout

		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json, markdown, html")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", gemini.DefaultModel, "generation model to use")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 120*time.Second, "audit timeout")

	rootCmd.AddCommand(versionCmd)
}
