package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afuentes/centinela/internal/gemini"
	"github.com/afuentes/centinela/internal/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	labelFlag string
	modesFlag []string
)

var scanCmd = &cobra.Command{
	Use:   "scan <archivo>",
	Short: "Run an expert audit over a file",
	Long: `Sends the file content to the generation model for an expert policy
audit and prints the sanitized result in the selected output format.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&labelFlag, "label", "l", "", "display name for the audited application (defaults to the file name)")
	scanCmd.Flags().StringSliceVar(&modesFlag, "modes", nil, "audit modes (policy names); defaults to the integral audit")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	label := labelFlag
	if label == "" {
		label = filepath.Base(path)
	}

	formatter, err := output.GetFormatter(outputFlag)
	if err != nil {
		return err
	}

	gateway := newGateway(appConfig)
	obs := gemini.FuncObserver{
		OnLog: func(line string) {
			fmt.Fprintln(cmd.ErrOrStderr(), color.CyanString(line))
		},
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	result, err := gateway.Scan(ctx, gemini.ScanRequest{
		Content: string(data),
		Label:   label,
		Modes:   modesFlag,
	}, obs)
	if err != nil {
		return err
	}

	return formatter.Format(os.Stdout, result)
}
