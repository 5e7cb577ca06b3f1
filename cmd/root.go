package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/marlowhealth/compass_backend/cmd/http"
	systemcmd "github.com/marlowhealth/compass_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Compass clinical screening and triage backend.",
	Long: `Compass administers versioned clinical screening flows, scores each
instrument, aggregates evidence into a ranked recommendation, and routes the
subject to an appropriate destination. For care-coordination sessions it also
records a supersedable triage history against the patient order.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
