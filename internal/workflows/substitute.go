package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/shush/internal/environment"
	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/kms"
)

// SubstituteOptions configures the environment substitution.
type SubstituteOptions struct {
	// Env is the environment to rewrite.
	Env environment.Store

	// Gateway performs the KMS calls.
	Gateway kms.Gateway

	// Prefix marks variables holding cipher text.
	Prefix string

	// NoPadding must match the mode the values were encrypted with.
	NoPadding bool
}

// Substitution records one variable that was decrypted.
type Substitution struct {
	// Source is the prefixed variable that was removed.
	Source string

	// Target is the variable that now holds the plaintext.
	Target string

	// KeyID is the key KMS reports having used.
	KeyID string
}

// SubstituteResult contains the outcome of a substitution pass.
type SubstituteResult struct {
	// Substituted lists decrypted variables in processing order.
	Substituted []Substitution

	// Skipped lists prefixed variables left untouched because they were empty.
	Skipped []string
}

// Targets returns the names of the installed plaintext variables.
func (r *SubstituteResult) Targets() []string {
	names := make([]string, len(r.Substituted))
	for i, s := range r.Substituted {
		names[i] = s.Target
	}
	return names
}

// Substitute replaces every <Prefix><NAME> variable in Env by <NAME> holding
// the decrypted value.
//
// Variables are processed one at a time in name order. Each one is removed
// from Env before it is decrypted, so cipher text never survives a failure.
// The first failure aborts the pass and names the variable; variables after
// it are left as they were. Empty values are skipped and left in place. A
// variable named exactly Prefix is rejected with ErrEmptyVariableName. An
// empty Prefix is rejected with ErrEmptyPrefix before anything is touched.
//
// The plaintext overwrites any existing <NAME>. Only the snapshot taken at
// the start is scanned, so installed variables are never decrypted again.
func Substitute(ctx context.Context, opts SubstituteOptions) (*SubstituteResult, error) {
	result := &SubstituteResult{}

	if opts.Prefix == "" {
		return result, kerrors.ErrEmptyPrefix
	}

	for _, v := range opts.Env.List() {
		if !strings.HasPrefix(v.Name, opts.Prefix) {
			continue
		}

		if v.Value == "" {
			result.Skipped = append(result.Skipped, v.Name)
			continue
		}

		if err := opts.Env.Unset(v.Name); err != nil {
			return result, fmt.Errorf("could not remove %s: %w", v.Name, err)
		}

		target := strings.TrimPrefix(v.Name, opts.Prefix)
		if target == "" {
			return result, fmt.Errorf("could not decrypt %s: %w", v.Name, kerrors.ErrEmptyVariableName)
		}

		plaintext, keyID, err := decryptToken(ctx, opts.Gateway, v.Value, opts.NoPadding)
		if err != nil {
			return result, fmt.Errorf("could not decrypt %s: %w", v.Name, err)
		}

		if err := opts.Env.Set(target, plaintext); err != nil {
			return result, fmt.Errorf("could not set %s: %w", target, err)
		}

		result.Substituted = append(result.Substituted, Substitution{
			Source: v.Name,
			Target: target,
			KeyID:  keyID,
		})
	}

	return result, nil
}
