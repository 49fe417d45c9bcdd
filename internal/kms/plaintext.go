package kms

import (
	"strings"
	"unicode/utf8"
)

// plaintextString converts decrypted bytes to a string. Each invalid UTF-8
// sequence becomes one U+FFFD, where a sequence is the longest prefix of a
// well-formed encoding (or a single byte). Two stray bytes therefore give
// two replacement characters, while a truncated three byte encoding gives
// one.
func plaintextString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r != utf8.RuneError || size > 1 {
			sb.Write(b[:size])
			b = b[size:]
			continue
		}
		sb.WriteRune(utf8.RuneError)
		b = b[invalidSequenceLen(b):]
	}
	return sb.String()
}

// invalidSequenceLen returns how many bytes of b, which does not start with
// a valid encoding, form one invalid sequence.
func invalidSequenceLen(b []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	var n int

	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		n = 2
	case lead == 0xE0:
		n, lo = 3, 0xA0
	case lead == 0xED:
		n, hi = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		n = 3
	case lead == 0xF0:
		n, lo = 4, 0x90
	case lead >= 0xF1 && lead <= 0xF3:
		n = 4
	case lead == 0xF4:
		n, hi = 4, 0x8F
	default:
		return 1
	}

	i := 1
	for ; i < n && i < len(b); i++ {
		c := b[i]
		if i == 1 && (c < lo || c > hi) {
			break
		}
		if i > 1 && (c < 0x80 || c > 0xBF) {
			break
		}
	}
	return i
}
