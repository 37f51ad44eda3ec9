package cli

import (
	"fmt"

	"github.com/afuentes/centinela/internal/web"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Centinela web server",
	Long:  "Launches the violations dashboard and external scanner in a browser.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (host:port), overrides the configured address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if addrFlag != "" {
		cfg.Addr = addrFlag
	}

	s := web.NewServer(cfg, violationStore(), newGateway(cfg))
	fmt.Fprintf(cmd.OutOrStdout(), "Centinela web server listening on %s\n", cfg.Addr)
	return s.Start()
}
