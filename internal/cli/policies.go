package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/afuentes/centinela/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the platform policy catalog",
	RunE:  runPolicies,
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}

func runPolicies(cmd *cobra.Command, args []string) error {
	policies := catalog.All()

	if outputFlag == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(policies)
	}

	for _, p := range policies {
		fmt.Fprintf(os.Stdout, "%s\n  %s\n\n", color.New(color.Bold).Sprint(p.Name), p.Description)
	}
	return nil
}
