// Package keyref normalizes user supplied key strings into the addressing
// forms understood by AWS KMS: a key id, a key ARN or an alias.
package keyref

import (
	"strings"

	"github.com/google/uuid"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

const (
	// ARNPrefix marks a fully qualified KMS resource name.
	ARNPrefix = "arn:aws:kms"

	// AliasPrefix is carried by every alias reference.
	AliasPrefix = "alias/"
)

// Kind identifies which addressing form a Reference holds.
type Kind int

const (
	KindAlias Kind = iota
	KindID
	KindARN
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindARN:
		return "arn"
	default:
		return "alias"
	}
}

// Reference addresses a KMS key. The zero value is an empty alias; use
// Resolve to build one.
type Reference struct {
	kind Kind
	id   uuid.UUID
	name string
}

// Resolve turns raw into a Reference. It never fails: anything that is not
// an ARN or a canonical UUID becomes an alias.
func Resolve(raw string) Reference {
	if strings.HasPrefix(raw, ARNPrefix) {
		return ARN(raw)
	}
	if id, ok := parseCanonicalUUID(raw); ok {
		return ID(id)
	}
	return Alias(raw)
}

// ID builds a key id reference.
func ID(id uuid.UUID) Reference {
	return Reference{kind: KindID, id: id}
}

// ARN builds a key ARN reference. The value is kept as is.
func ARN(arn string) Reference {
	return Reference{kind: KindARN, name: arn}
}

// Alias builds an alias reference, adding the alias/ prefix when missing.
func Alias(name string) Reference {
	if !strings.HasPrefix(name, AliasPrefix) {
		name = AliasPrefix + name
	}
	return Reference{kind: KindAlias, name: name}
}

// Kind reports the addressing form.
func (r Reference) Kind() Kind {
	return r.kind
}

// ID returns the key id when r is an id reference.
func (r Reference) ID() (uuid.UUID, bool) {
	return r.id, r.kind == KindID
}

// String renders r in the form KMS accepts as a KeyId.
func (r Reference) String() string {
	if r.kind == KindID {
		return r.id.String()
	}
	return r.name
}

// Set implements pflag.Value.
func (r *Reference) Set(raw string) error {
	if raw == "" {
		return kerrors.ErrEmptyKeyReference
	}
	*r = Resolve(raw)
	return nil
}

// Type implements pflag.Value.
func (r *Reference) Type() string {
	return "key"
}

// uuid.Parse also accepts urn: and braced forms; only the 36 character
// hyphenated form is treated as a key id.
func parseCanonicalUUID(raw string) (uuid.UUID, bool) {
	if len(raw) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
