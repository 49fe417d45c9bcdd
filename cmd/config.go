package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/shush/internal/configs"
	"github.com/PolarWolf314/shush/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shush configuration",
		Long: `Provides commands for managing the optional shush config file.

The config file holds defaults for the AWS region, profile and endpoint,
the exec prefix, the padding mode and the audit log. Command line flags
always take precedence over it.

Examples:
  # Show the effective configuration
  shush config show

  # Write defaults for a LocalStack setup
  shush config init --region us-east-1 --endpoint-url http://localhost:4566`,
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Displays the configuration shush would use, after applying command
line flags to the config file.

Examples:
  # Show the configuration as TOML
  shush config show

  # Output in JSON format
  shush config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config show command")
			Logger.Debugf("Config file: %s", effectiveConfigPath())

			effective := *configs.GlobalConfig
			effective.Prefix = effective.EffectivePrefix()

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(effective); err != nil {
					return Logger.ErrorfAndReturn("failed to encode config: %w", err)
				}
				return nil
			}

			if err := toml.NewEncoder(out).Encode(effective); err != nil {
				return Logger.ErrorfAndReturn("failed to encode config: %w", err)
			}
			return nil
		},
	}

	configShowCmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")

	return configShowCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		prefix   string
		noPad    bool
		auditLog string
	)

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the config file",
		Long: `Writes the config file, creating it if needed.

Values already in the file are kept unless overridden by a flag. The
global --region, --profile and --endpoint-url flags are saved too.

Examples:
  # Save a default region and profile
  shush config init --region eu-west-1 --profile prod

  # Enable the audit log and unpadded tokens
  shush config init --audit-log ~/.local/state/shush/audit.jsonl --no_padding`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config init command")

			path := effectiveConfigPath()
			if path == "" {
				return Logger.ErrorfAndReturn("could not determine the config file location, pass %s", ui.Flag.Sprint("--config"))
			}

			config := *configs.GlobalConfig
			flags := cmd.Flags()
			if flags.Changed("prefix") {
				config.Prefix = prefix
			}
			if flags.Changed("no_padding") {
				config.NoPadding = noPad
			}
			if flags.Changed("audit-log") {
				config.AuditLog = auditLog
			}

			Logger.Debugf("Writing config to %s", path)
			if err := configs.SaveConfig(path, &config); err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}
			configs.GlobalConfig = &config

			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success.Sprint("✓")+" Config written to "+ui.Highlight.Sprint(path))
			return nil
		},
	}

	configInitCmd.Flags().StringVar(&prefix, "prefix", "", "prefix of variables exec decrypts")
	configInitCmd.Flags().BoolVar(&noPad, "no_padding", false, "use tokens without base64 padding")
	configInitCmd.Flags().StringVar(&auditLog, "audit-log", "", "append a JSON line per operation to this file")

	return configInitCmd
}
