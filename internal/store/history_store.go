package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"urchat/internal/container"
	"urchat/internal/domain"
)

// HistoryFileStore keeps one encrypted message log per user, sealed with the
// same container format as the profile.
type HistoryFileStore struct {
	dir   string
	codec container.Codec
	mu    sync.Mutex
}

// NewHistoryFileStore stores history files under dir using codec.
func NewHistoryFileStore(dir string, codec container.Codec) *HistoryFileStore {
	return &HistoryFileStore{dir: dir, codec: codec}
}

func (s *HistoryFileStore) path(user domain.Username) string {
	return filepath.Join(s.dir, fmt.Sprintf("messages_%s.enc", user))
}

// Append adds messages to the user's log and rewrites the container in full.
func (s *HistoryFileStore) Append(
	passphrase string,
	user domain.Username,
	messages ...domain.StoredMessage,
) error {
	if len(messages) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.load(s.path(user), passphrase)
	if err != nil {
		return err
	}
	log = append(log, messages...)
	return s.save(s.path(user), passphrase, log)
}

// List returns the most recent limit messages exchanged with peer, oldest
// first. A zero limit returns everything; an empty peer matches all
// conversations.
func (s *HistoryFileStore) List(
	passphrase string,
	user domain.Username,
	peer domain.Username,
	limit int,
) ([]domain.StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.load(s.path(user), passphrase)
	if err != nil {
		return nil, err
	}
	var out []domain.StoredMessage
	for _, m := range log {
		if peer == "" || m.Sender == peer || m.Recipient == peer {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// Backup re-encrypts the user's log to dst under backupPassphrase, which may
// differ from the passphrase protecting the live log. An empty
// backupPassphrase reuses the live one.
func (s *HistoryFileStore) Backup(
	passphrase string,
	user domain.Username,
	dst, backupPassphrase string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if backupPassphrase == "" {
		backupPassphrase = passphrase
	}
	log, err := s.load(s.path(user), passphrase)
	if err != nil {
		return err
	}
	return s.save(dst, backupPassphrase, log)
}

// Restore decrypts a backup at src and replaces the user's live log with it.
func (s *HistoryFileStore) Restore(
	passphrase string,
	user domain.Username,
	src, backupPassphrase string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if backupPassphrase == "" {
		backupPassphrase = passphrase
	}
	log, err := s.load(src, backupPassphrase)
	if err != nil {
		return err
	}
	if log == nil {
		return fmt.Errorf("backup %s: %w", src, domain.ErrNotFound)
	}
	return s.save(s.path(user), passphrase, log)
}

// load reads and decrypts a log file; a missing file yields an empty log.
func (s *HistoryFileStore) load(path, passphrase string) ([]domain.StoredMessage, error) {
	sealed, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}
	raw, err := s.codec.Decrypt(sealed, passphrase)
	if err != nil {
		return nil, err
	}
	var log []domain.StoredMessage
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	return log, nil
}

func (s *HistoryFileStore) save(path, passphrase string, log []domain.StoredMessage) error {
	raw, err := json.Marshal(log)
	if err != nil {
		return err
	}
	sealed, err := s.codec.Encrypt(raw, passphrase)
	if err != nil {
		return err
	}
	return writeFile(path, sealed, 0o600)
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
