package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of Centinela",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("centinela version %s\n", version)
	},
}
