package rotation

import (
	"context"
	"fmt"
	"time"

	"urchat/internal/crypto"
	"urchat/internal/domain"
	"urchat/internal/keyring"
)

// DefaultMaxKeyAge is how old a namespace's current keypair may grow before
// a rotation is considered due.
const DefaultMaxKeyAge = 24 * time.Hour

// Engine rotates a principal's key material and publishes the resulting
// public key to the directory.
type Engine struct {
	directory domain.Directory
	maxKeyAge time.Duration
}

// New returns an engine publishing to directory. A non-positive maxKeyAge
// falls back to DefaultMaxKeyAge.
func New(directory domain.Directory, maxKeyAge time.Duration) *Engine {
	if maxKeyAge <= 0 {
		maxKeyAge = DefaultMaxKeyAge
	}
	return &Engine{directory: directory, maxKeyAge: maxKeyAge}
}

// Rotate retires the namespace's current keypair and issues a new one, then
// regenerates the identity keypair as well, keeping the predecessor in the
// record's retired-identity chain so earlier traffic stays decryptable.
//
// The new identity public key is published to the directory. If publication
// fails the in-memory rotation has still taken effect and the error wraps
// domain.ErrPublish: the caller must persist the rotated record and retry
// publication rather than discard it.
func (e *Engine) Rotate(
	ctx context.Context,
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
) error {
	now := time.Now()
	if _, err := keyring.RetireCurrentAndIssueNew(record, namespace, now); err != nil {
		return err
	}

	identity, err := crypto.GenerateNamespacedKeypair(now)
	if err != nil {
		return err
	}
	record.RetiredIdentities = keyring.AppendRetired(record.RetiredIdentities, record.Identity)
	record.Identity = identity

	if err := e.directory.PutPublicKey(ctx, record.Username, identity.Public); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPublish, err)
	}
	return nil
}

// RotationDue reports whether the namespace's current keypair is missing or
// older than the engine's maximum key age at now.
func (e *Engine) RotationDue(
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
	now time.Time,
) bool {
	current, err := keyring.Current(record, namespace)
	if err != nil {
		return true
	}
	return now.Sub(current.CreatedAt) > e.maxKeyAge
}
