// Package errors provides typed error values for the shush application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Encoding errors: malformed cipher text tokens (ErrDecodeFailure)
//   - Remote errors: KMS failures and incomplete responses (ErrRemoteFailure)
//   - Exec errors: substitution and child process failures (ErrProcessSpawnFailure)
//   - Input errors: unusable arguments or config (ErrEmptyKeyReference, ErrInvalidConfig)
//
// # Usage
//
// Wrap the sentinel together with the underlying cause:
//
//	return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, err)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrDecodeFailure) {
//	    // hint at --no_padding
//	}
//
// ExitError is not a failure of shush itself: it relays the exit status of
// the command started by exec.
package errors
