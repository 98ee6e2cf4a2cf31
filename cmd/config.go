package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dt-pm-tools/ticket-transfer/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure ticket directories",
	Long:  `Interactively set the resolved tickets directory and the converted output directory. Settings are saved to ~/.ticket-transfer.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		// Load existing config for defaults
		existing, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		resolved, err := prompt(reader, out, "Resolved tickets directory", existing.ResolvedDir)
		if err != nil {
			return err
		}
		converted, err := prompt(reader, out, "Converted output directory", existing.ConvertedDir)
		if err != nil {
			return err
		}

		cfg := config.Config{
			ResolvedDir:  resolved,
			ConvertedDir: converted,
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Fprintf(out, "Configuration saved to %s\n", path)
		return nil
	},
}

// prompt reads one line, falling back to def when the answer is blank.
func prompt(r *bufio.Reader, w io.Writer, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && line == "" && def == "" {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
