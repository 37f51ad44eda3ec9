package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/afuentes/centinela/internal/output"
	"github.com/afuentes/centinela/internal/store"
	"github.com/afuentes/centinela/pkg/types"
	"github.com/spf13/cobra"
)

var violationsCmd = &cobra.Command{
	Use:   "violations",
	Short: "List the recorded policy violations",
	Long:  "Prints the violations matching the given filters, newest first.",
	RunE:  runViolations,
}

func init() {
	addViolationFilterFlags(violationsCmd)
	rootCmd.AddCommand(violationsCmd)
}

// addViolationFilterFlags registers the shared filter flags used by the
// violations and summary commands.
func addViolationFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("status", "", "filter by status (Marcada, En Revisión, Resuelta, Prohibida, Apelación)")
	cmd.Flags().String("risk", "", "filter by risk (Crítico, Alto, Medio, Bajo)")
	cmd.Flags().String("policy", "", "filter by policy name")
	cmd.Flags().Int("year", 0, "filter by year")
	cmd.Flags().String("month", "", "filter by month name")
	cmd.Flags().StringP("query", "q", "", "free-text search")
}

func filterFromFlags(cmd *cobra.Command) store.Filter {
	flags := cmd.Flags()
	status, _ := flags.GetString("status")
	risk, _ := flags.GetString("risk")
	policy, _ := flags.GetString("policy")
	year, _ := flags.GetInt("year")
	month, _ := flags.GetString("month")
	query, _ := flags.GetString("query")

	return store.Filter{
		Status: types.ViolationStatus(status),
		Risk:   types.Risk(risk),
		Policy: policy,
		Year:   year,
		Month:  month,
		Query:  query,
	}
}

func runViolations(cmd *cobra.Command, args []string) error {
	violations := violationStore().List(filterFromFlags(cmd))

	if outputFlag == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(violations)
	}

	output.ViolationsTable(os.Stdout, violations)
	fmt.Fprintln(os.Stdout, "Total:", strconv.Itoa(len(violations)))
	return nil
}
