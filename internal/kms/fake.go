package kms

import (
	"bytes"
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/keyref"
)

// FakeKeyARN is the key reported by a zero Fake.
const FakeKeyARN = "arn:aws:kms:us-east-1:111122223333:key/1234abcd-12ab-34cd-56ef-1234567890ab"

var fakeMagic = []byte("shush-fake:")

// Fake is an in-memory Gateway. It does no cryptography: blobs are the
// plaintext framed with the key reference, so they round trip through
// Decrypt and nothing else.
type Fake struct {
	// KeyARN is reported as the key for alias and id references.
	// Defaults to FakeKeyARN.
	KeyARN string

	// EncryptErr and DecryptErr make the matching call fail.
	EncryptErr error
	DecryptErr error

	// OmitCiphertext, OmitPlaintext and OmitKeyID simulate incomplete responses.
	OmitCiphertext bool
	OmitPlaintext  bool
	OmitKeyID      bool

	// EncryptCalls and DecryptCalls count round trips.
	EncryptCalls int
	DecryptCalls int
}

// Encrypt implements Gateway.
func (f *Fake) Encrypt(ctx context.Context, key keyref.Reference, plaintext string) ([]byte, error) {
	f.EncryptCalls++
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, err)
	}
	if f.EncryptErr != nil {
		return nil, fmt.Errorf("%w: failed to encrypt with KMS key %s: %w", kerrors.ErrRemoteFailure, key, f.EncryptErr)
	}
	if f.OmitCiphertext {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, kerrors.ErrMissingCiphertext)
	}

	var blob bytes.Buffer
	blob.Write(fakeMagic)
	blob.WriteString(f.reportedKey(key))
	blob.WriteByte(0)
	blob.WriteString(plaintext)
	return blob.Bytes(), nil
}

// Decrypt implements Gateway.
func (f *Fake) Decrypt(ctx context.Context, ciphertext []byte) (*DecryptResult, error) {
	f.DecryptCalls++
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, err)
	}
	if f.DecryptErr != nil {
		return nil, fmt.Errorf("%w: failed to decrypt: %w", kerrors.ErrRemoteFailure, f.DecryptErr)
	}

	body, ok := bytes.CutPrefix(ciphertext, fakeMagic)
	if !ok {
		return nil, fmt.Errorf("%w: failed to decrypt: InvalidCiphertextException", kerrors.ErrRemoteFailure)
	}
	keyID, plaintext, ok := bytes.Cut(body, []byte{0})
	if !ok {
		return nil, fmt.Errorf("%w: failed to decrypt: InvalidCiphertextException", kerrors.ErrRemoteFailure)
	}

	if f.OmitPlaintext {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrRemoteFailure, kerrors.ErrMissingPlaintext)
	}

	result := &DecryptResult{Plaintext: string(plaintext)}
	if !f.OmitKeyID {
		result.KeyID = string(keyID)
	}
	return result, nil
}

func (f *Fake) reportedKey(key keyref.Reference) string {
	if key.Kind() == keyref.KindARN {
		return key.String()
	}
	if f.KeyARN != "" {
		return f.KeyARN
	}
	return FakeKeyARN
}
