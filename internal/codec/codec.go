// Package codec converts KMS cipher text blobs to and from the text-safe
// tokens printed by encrypt and read by decrypt and exec.
//
// Tokens are standard base64, with or without padding. The token carries no
// marker for which form was used, so callers must decode with the same mode
// they encoded with.
package codec

import (
	"encoding/base64"
	"fmt"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

func encoding(noPadding bool) *base64.Encoding {
	if noPadding {
		return base64.RawStdEncoding
	}
	return base64.StdEncoding
}

// Encode renders blob as a token.
func Encode(blob []byte, noPadding bool) string {
	return encoding(noPadding).EncodeToString(blob)
}

// Decode parses a token produced by Encode with the same padding mode.
func Decode(token string, noPadding bool) ([]byte, error) {
	blob, err := encoding(noPadding).DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrDecodeFailure, err)
	}
	return blob, nil
}
