package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/spf13/cobra"
)

var summaryInputFlag string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate an executive summary of the recorded violations",
	Long: `Asks the generation model for a three-sentence executive summary of
the violations matching the given filters. With --input, the violations are
read from a JSON file instead of the built-in data set.`,
	RunE: runSummary,
}

func init() {
	addViolationFilterFlags(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryInputFlag, "input", "i", "", "JSON file with violations to summarize")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	source := violationStore()
	if summaryInputFlag != "" {
		loaded, err := loadViolations(summaryInputFlag)
		if err != nil {
			return err
		}
		source = store.New(loaded...)
	}
	violations := source.List(filterFromFlags(cmd))

	gateway := newGateway(appConfig)
	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	summary, err := gateway.Summarize(ctx, violations)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary)
	return nil
}

// violationStore builds the in-memory store over the seed records. The CLI
// has no persistence; the seed is the working data set.
func violationStore() *store.Store {
	return store.New(store.Seed()...)
}

func loadViolations(path string) ([]types.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading violations file: %w", err)
	}
	var violations []types.Violation
	if err := json.Unmarshal(data, &violations); err != nil {
		return nil, fmt.Errorf("parsing violations file: %w", err)
	}
	return violations, nil
}
