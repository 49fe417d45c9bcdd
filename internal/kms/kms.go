// Package kms wraps the AWS Key Management Service calls used by shush.
//
// The Gateway interface is the only thing the rest of the program knows
// about: one Encrypt and one Decrypt, each a single round trip with no
// retries. Client is the AWS implementation; Fake is an in-memory stand-in
// for tests.
package kms

import (
	"context"

	"github.com/PolarWolf314/shush/internal/keyref"
)

// Gateway performs remote encrypt and decrypt calls.
type Gateway interface {
	// Encrypt returns the raw cipher text blob for plaintext under key.
	Encrypt(ctx context.Context, key keyref.Reference, plaintext string) ([]byte, error)

	// Decrypt returns the plaintext for a raw cipher text blob and the key
	// the service reports having used.
	Decrypt(ctx context.Context, ciphertext []byte) (*DecryptResult, error)
}

// DecryptResult is the outcome of a single decrypt call.
type DecryptResult struct {
	// KeyID is the key reported by the service, usually a key ARN. Empty
	// when the service omits it.
	KeyID string

	// Plaintext is the decrypted value.
	Plaintext string
}
