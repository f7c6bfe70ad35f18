package profile

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"urchat/internal/crypto"
	"urchat/internal/domain"
	"urchat/internal/keyring"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service creates and loads principal profiles using a backing store, and
// publishes the identity public key to the directory on registration.
type Service struct {
	store     domain.ProfileStore
	directory domain.Directory
	namespace domain.NamespaceID
}

// New returns a profile service for the given namespace.
func New(
	store domain.ProfileStore,
	directory domain.Directory,
	namespace domain.NamespaceID,
) *Service {
	return &Service{store: store, directory: directory, namespace: namespace}
}

// Register creates a new principal: a fresh identity keypair, a current
// keypair for the configured namespace, and an encrypted profile on disk.
// The identity public key is published to the directory; if publication
// fails the saved profile is kept and the error wraps domain.ErrPublish so
// the caller can retry.
func (s *Service) Register(
	ctx context.Context,
	username domain.Username,
	passphrase string,
) (domain.PrincipalRecord, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.PrincipalRecord{}, "", ErrWeakPassphrase
	}

	identity, err := crypto.GenerateNamespacedKeypair(time.Now())
	if err != nil {
		return domain.PrincipalRecord{}, "", err
	}
	record := domain.PrincipalRecord{
		Username: username,
		Identity: identity,
	}
	if _, err := keyring.EnsureNamespace(&record, s.namespace, time.Now()); err != nil {
		return domain.PrincipalRecord{}, "", err
	}
	if err := s.store.SaveProfile(passphrase, record); err != nil {
		return domain.PrincipalRecord{}, "", err
	}

	fp := crypto.Fingerprint(record.Identity.Public)
	if err := s.directory.PutPublicKey(ctx, username, record.Identity.Public); err != nil {
		return record, fp, fmt.Errorf("%w: %v", domain.ErrPublish, err)
	}
	return record, fp, nil
}

// Login decrypts and returns the stored profile, creating a keypair for the
// configured namespace on first contact with a new deployment (the profile
// is re-saved when that happens).
func (s *Service) Login(
	ctx context.Context,
	passphrase string,
) (domain.PrincipalRecord, error) {
	record, err := s.store.LoadProfile(passphrase)
	if err != nil {
		return domain.PrincipalRecord{}, err
	}
	mutated, err := keyring.EnsureNamespace(&record, s.namespace, time.Now())
	if err != nil {
		return domain.PrincipalRecord{}, err
	}
	if mutated {
		if err := s.store.SaveProfile(passphrase, record); err != nil {
			return domain.PrincipalRecord{}, err
		}
	}
	return record, nil
}

// Fingerprint returns a short fingerprint of the stored identity public key.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	record, err := s.store.LoadProfile(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(record.Identity.Public), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
