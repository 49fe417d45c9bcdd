package cmd

import (
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/ui"
	"github.com/PolarWolf314/shush/internal/utils"
	"github.com/PolarWolf314/shush/internal/workflows"
	"github.com/spf13/cobra"
)

func newDecryptCommand() *cobra.Command {
	var (
		noPad    bool
		printKey bool
	)

	decryptCmd := &cobra.Command{
		Use:   "decrypt [ciphertext|-]",
		Short: "Decrypts a cipher text token and prints the secret",
		Long: `Decrypts a token produced by shush encrypt and prints the secret.

The token is read from stdin when the argument is - or missing. The key is
taken from the token itself, so no --key is needed. With --print-key the
id of that key is printed instead of the secret. Output has no trailing
newline.

Examples:
  # Decrypt a token
  shush decrypt "$TOKEN"

  # Show which key a token was encrypted with
  echo "$TOKEN" | shush decrypt --print-key`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting decrypt command")

			ciphertext, err := utils.ArgOrStdin(args, cmd.InOrStdin())
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read cipher text: %w", err)
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			Logger.Debugf("Creating KMS gateway")
			gateway, err := newGateway(ctx)
			if err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}

			_, stop := startSpinner("Decrypting...")
			defer stop()

			result, err := workflows.Decrypt(ctx, workflows.DecryptOptions{
				Gateway:    gateway,
				Ciphertext: ciphertext,
				NoPadding:  noPadding(cmd, noPad),
			})
			stop()
			if err != nil {
				warnPaddingMismatch(cmd, err)
				return Logger.ErrorfAndReturn("%w", err)
			}
			Logger.Infof("Decrypted with key %s", result.KeyID)

			output := result.Plaintext
			if printKey {
				output = result.KeyID
			}

			Logger.Infof("Decrypt command completed successfully")
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	decryptCmd.Flags().BoolVar(&noPad, "no_padding", false, "expect a token without base64 padding")
	decryptCmd.Flags().BoolVarP(&printKey, "print-key", "p", false, "print the id of the key instead of the secret")

	return decryptCmd
}

// warnPaddingMismatch points at the usual cause of an undecodable token.
func warnPaddingMismatch(cmd *cobra.Command, err error) {
	if !errors.Is(err, kerrors.ErrDecodeFailure) {
		return
	}
	flagValue, _ := cmd.Flags().GetBool("no_padding")
	retry := cmd.CommandPath() + " --no_padding"
	if noPadding(cmd, flagValue) {
		retry = cmd.CommandPath() + " --no_padding=false"
	}
	Logger.WarnfAlways("The token may have been encrypted with a different %s setting, try %s",
		ui.Flag.Sprint("--no_padding"), ui.Code.Sprint(retry))
}
