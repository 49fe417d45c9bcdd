// Package workflows provides high-level orchestration for shush commands.
//
// Workflows coordinate the codec, the KMS gateway, the environment store
// and the process runner to implement complete user-facing features,
// independent of CLI concerns like flag parsing, spinners, and output
// formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Prints the result
//
// Workflows handle everything else:
//   - Normalizing input (trimming, decoding)
//   - Performing the KMS round trips
//   - Rewriting the environment and starting the command
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Encrypt: Encrypts a secret under a key and returns a token
//   - Decrypt: Decrypts a token and returns the plaintext and key id
//   - Substitute: Replaces <prefix><NAME> variables by decrypted <NAME>
//   - Exec: Substitute, then run a command with the new environment
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrDecodeFailure) {
//	    // Suggest checking --no_padding
//	}
//
// Substitute and Exec wrap failures with the name of the variable that
// caused them.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Cancelling it aborts in-flight KMS calls; variables already processed
// stay rewritten.
package workflows
