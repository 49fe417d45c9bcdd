package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/shush/internal/audit"
	"github.com/PolarWolf314/shush/internal/codec"
	"github.com/PolarWolf314/shush/internal/keyref"
	"github.com/PolarWolf314/shush/internal/kms"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Gateway performs the KMS call.
	Gateway kms.Gateway

	// Key is the key to encrypt under.
	Key keyref.Reference

	// Plaintext is the secret to encrypt.
	Plaintext string

	// Trim removes leading and trailing whitespace from Plaintext first.
	Trim bool

	// NoPadding selects unpadded cipher text tokens.
	NoPadding bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Ciphertext is the text-safe token to print.
	Ciphertext string

	// Key is the key reference that was sent to KMS.
	Key string
}

// Encrypt encrypts a secret under a KMS key and encodes the blob as a token.
//
// Returns ErrRemoteFailure if KMS rejects the key or the call fails, or if
// the response carries no cipher text.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	plaintext := opts.Plaintext
	if opts.Trim {
		plaintext = strings.TrimSpace(plaintext)
	}

	blob, err := opts.Gateway.Encrypt(ctx, opts.Key, plaintext)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{
		Ciphertext: codec.Encode(blob, opts.NoPadding),
		Key:        opts.Key.String(),
	}

	auditEntry := audit.LogWithUser("encrypt")
	auditEntry.Key = result.Key
	audit.Log(auditEntry)

	return result, nil
}
