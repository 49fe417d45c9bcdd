package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/shush/internal/audit"
	"github.com/PolarWolf314/shush/internal/codec"
	"github.com/PolarWolf314/shush/internal/kms"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Gateway performs the KMS call.
	Gateway kms.Gateway

	// Ciphertext is the token printed by encrypt. Surrounding whitespace,
	// such as the newline of `echo`, is ignored.
	Ciphertext string

	// NoPadding must match the mode the token was encrypted with.
	NoPadding bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// KeyID is the key KMS reports having used. May be empty.
	KeyID string

	// Plaintext is the decrypted secret.
	Plaintext string
}

// Decrypt decodes a token and decrypts it with KMS.
//
// Returns ErrDecodeFailure if the token is not valid for the padding mode.
// Returns ErrRemoteFailure if the KMS call fails or returns no plaintext.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	plaintext, keyID, err := decryptToken(ctx, opts.Gateway, strings.TrimSpace(opts.Ciphertext), opts.NoPadding)
	if err != nil {
		return nil, err
	}

	auditEntry := audit.LogWithUser("decrypt")
	auditEntry.Key = keyID
	audit.Log(auditEntry)

	return &DecryptResult{KeyID: keyID, Plaintext: plaintext}, nil
}

// decryptToken is the decode-then-decrypt step shared by decrypt and exec.
func decryptToken(ctx context.Context, gateway kms.Gateway, token string, noPadding bool) (plaintext, keyID string, err error) {
	blob, err := codec.Decode(token, noPadding)
	if err != nil {
		return "", "", err
	}

	result, err := gateway.Decrypt(ctx, blob)
	if err != nil {
		return "", "", err
	}

	return result.Plaintext, result.KeyID, nil
}
