package cmd

import (
	"fmt"

	"github.com/PolarWolf314/shush/internal/keyref"
	"github.com/PolarWolf314/shush/internal/utils"
	"github.com/PolarWolf314/shush/internal/workflows"
	"github.com/spf13/cobra"
)

func newEncryptCommand() *cobra.Command {
	var (
		key   keyref.Reference
		trim  bool
		noPad bool
	)

	encryptCmd := &cobra.Command{
		Use:   "encrypt [plaintext|-]",
		Short: "Encrypts a secret with a KMS key and prints the cipher text",
		Long: `Encrypts a secret with the given KMS key and prints a base64 token.

The key may be a key id, a key ARN, an alias ARN, or an alias name with or
without the alias/ prefix. The secret is read from stdin when the argument
is - or missing. The token is printed without a trailing newline.

Examples:
  # Encrypt with an alias
  shush encrypt --key app-secrets "hunter2"

  # Read the secret from a file, dropping its trailing newline
  shush encrypt --key alias/app-secrets --trim < password.txt

  # Produce an unpadded token
  shush encrypt --key 1234abcd-12ab-34cd-56ef-1234567890ab --no_padding "hunter2"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting encrypt command")

			plaintext, err := utils.ArgOrStdin(args, cmd.InOrStdin())
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read plaintext: %w", err)
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			Logger.Debugf("Creating KMS gateway")
			gateway, err := newGateway(ctx)
			if err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}

			_, stop := startSpinner(fmt.Sprintf("Encrypting with %s...", key.String()))
			defer stop()

			Logger.Infof("Encrypting with key %s", key.String())
			result, err := workflows.Encrypt(ctx, workflows.EncryptOptions{
				Gateway:   gateway,
				Key:       key,
				Plaintext: plaintext,
				Trim:      trim,
				NoPadding: noPadding(cmd, noPad),
			})
			stop()
			if err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}

			Logger.Infof("Encrypt command completed successfully")
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.Ciphertext)
			return err
		},
	}

	encryptCmd.Flags().VarP(&key, "key", "k", "KMS key id, ARN or alias to encrypt with")
	encryptCmd.Flags().BoolVarP(&trim, "trim", "t", false, "remove leading and trailing whitespace from the secret")
	encryptCmd.Flags().BoolVar(&noPad, "no_padding", false, "omit base64 padding from the token")
	_ = encryptCmd.MarkFlagRequired("key")

	return encryptCmd
}
