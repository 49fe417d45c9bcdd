package cmd

import (
	"fmt"

	"github.com/PolarWolf314/shush/internal/configs"
	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/ui"
	"github.com/PolarWolf314/shush/internal/utils"
	"github.com/PolarWolf314/shush/internal/workflows"
	"github.com/spf13/cobra"
)

func newExecCommand() *cobra.Command {
	var (
		noPad  bool
		prefix string
	)

	execCmd := &cobra.Command{
		Use:   "exec [flags] -- command [args...]",
		Short: "Decrypts prefixed environment variables and runs a command",
		Long: `Decrypts every environment variable whose name starts with the prefix
and runs the command with the result.

KMS_ENCRYPTED_DB_PASSWORD holding a token becomes DB_PASSWORD holding the
secret, and KMS_ENCRYPTED_DB_PASSWORD is removed. An existing DB_PASSWORD
is overwritten. Variables with an empty value are left as they are. If any
variable cannot be decrypted, the command is not started.

shush exits with the exit code of the command.

Examples:
  # Run a server with its secrets decrypted
  shush exec -- ./server --port 8080

  # Use a custom prefix
  shush exec --prefix SEALED_ -- env`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return kerrors.ErrNoCommand
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting exec command")

			if !cmd.Flags().Changed("prefix") {
				prefix = configs.GlobalConfig.EffectivePrefix()
			}
			if prefix == "" {
				return Logger.ErrorfAndReturn("%w: pass a non-empty %s", kerrors.ErrEmptyPrefix, ui.Flag.Sprint("--prefix"))
			}
			Logger.Debugf("Using prefix %q", prefix)

			ctx, cancel := signalContext(cmd)
			defer cancel()

			Logger.Debugf("Creating KMS gateway")
			gateway, err := newGateway(ctx)
			if err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}

			_, stop := startSpinner("Decrypting environment...")
			defer stop()

			result, err := workflows.Exec(ctx, workflows.ExecOptions{
				Env:       processEnvironment,
				Gateway:   gateway,
				Prefix:    prefix,
				NoPadding: noPadding(cmd, noPad),
				Command:   args[0],
				Args:      args[1:],
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
				BeforeSpawn: func(r *workflows.SubstituteResult) {
					stop()
					if len(r.Skipped) > 0 {
						Logger.Warnf("Skipped empty variables:%s", utils.FormatNames(r.Skipped))
					}
					if len(r.Substituted) > 0 {
						Logger.Infof("Decrypted:%s", utils.FormatNames(r.Targets()))
					} else {
						Logger.Infof("No variables with prefix %s found", prefix)
					}
					Logger.Debugf("Starting %s", args[0])
				},
			})
			if err != nil {
				warnPaddingMismatch(cmd, err)
				return Logger.ErrorfAndReturn("%w", err)
			}

			Logger.Infof("%s exited with status %d", args[0], result.ExitCode)
			if result.ExitCode != 0 {
				return &kerrors.ExitError{Code: result.ExitCode}
			}
			return nil
		},
	}

	// Flags after the command name belong to the command.
	execCmd.Flags().SetInterspersed(false)
	execCmd.Flags().BoolVar(&noPad, "no_padding", false, "expect tokens without base64 padding")
	execCmd.Flags().StringVar(&prefix, "prefix", "", fmt.Sprintf("prefix of variables to decrypt (default %q)", configs.DefaultPrefix))

	return execCmd
}
