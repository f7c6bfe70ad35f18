package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"urchat/internal/container"
	"urchat/internal/domain"
)

const profileFile = "profile.enc"

// ProfileFileStore persists the principal record on disk, sealed in an
// encrypted container.
type ProfileFileStore struct {
	dir   string
	codec container.Codec
	mu    sync.Mutex
}

// NewProfileFileStore stores the profile under dir using codec.
func NewProfileFileStore(dir string, codec container.Codec) *ProfileFileStore {
	return &ProfileFileStore{dir: dir, codec: codec}
}

// SaveProfile serialises and encrypts the record, replacing any previous
// profile in full.
func (s *ProfileFileStore) SaveProfile(passphrase string, record domain.PrincipalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	sealed, err := s.codec.Encrypt(raw, passphrase)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, profileFile), sealed, 0o600)
}

// LoadProfile decrypts and returns the stored record. A missing profile is
// reported as domain.ErrNotFound.
func (s *ProfileFileStore) LoadProfile(passphrase string) (domain.PrincipalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := readFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		return domain.PrincipalRecord{}, err
	}
	if sealed == nil {
		return domain.PrincipalRecord{}, fmt.Errorf("profile: %w", domain.ErrNotFound)
	}
	raw, err := s.codec.Decrypt(sealed, passphrase)
	if err != nil {
		return domain.PrincipalRecord{}, err
	}
	var record domain.PrincipalRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.PrincipalRecord{}, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	return record, nil
}

// ProfileExists reports whether a profile file is present.
func (s *ProfileFileStore) ProfileExists() (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, profileFile))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
