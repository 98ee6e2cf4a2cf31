package cmd

import (
	"fmt"
	"os"

	"github.com/dt-pm-tools/ticket-transfer/internal/config"
	"github.com/dt-pm-tools/ticket-transfer/internal/transfer"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "ticket-transfer <ticket-id>",
	Short: "Stage a resolved ticket for conversion",
	Long: `Creates the converted/ directory tree (text, json, tmp) and echoes
resolved-tickets/<ticket-id>.md to stdout. Fails if any output directory
already exists.`,
	Version: version,
	Args:    ticketArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		run := appConfig.Transfer()
		if verbose {
			run.Log = cmd.ErrOrStderr()
		}

		ticketID := args[0]
		if err := transfer.Run(run, ticketID, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("transferring ticket %s: %w", ticketID, err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ticket-transfer.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report created directories on stderr")
}

// ticketArgs requires a ticket id. Anything after it is ignored.
func ticketArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return transfer.ErrMissingTicketID
	}
	return nil
}

// loadConfig loads and validates configuration.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'ticket-transfer config' to set the directories", err)
	}
	appConfig = cfg
	return nil
}
