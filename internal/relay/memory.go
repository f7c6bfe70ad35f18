package relay

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"urchat/internal/domain"
)

// Memory is an in-process directory and relay, used by the relay daemon's
// default backend and by tests.
type Memory struct {
	mu   sync.RWMutex
	keys map[domain.Username]domain.PublicKey
	msgs map[domain.Username][]domain.Envelope
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		keys: make(map[domain.Username]domain.PublicKey),
		msgs: make(map[domain.Username][]domain.Envelope),
	}
}

func (m *Memory) GetPublicKey(
	_ context.Context,
	username domain.Username,
) (domain.PublicKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key, ok := m.keys[username]
	if !ok {
		return domain.PublicKey{}, fmt.Errorf("public key for %q: %w", username, domain.ErrNotFound)
	}
	return key, nil
}

func (m *Memory) PutPublicKey(
	_ context.Context,
	username domain.Username,
	key domain.PublicKey,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[username] = key
	return nil
}

func (m *Memory) ListUsers(_ context.Context) ([]domain.Username, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]domain.Username, 0, len(m.keys))
	for u := range m.keys {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users, nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) Store(_ context.Context, envelope domain.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs[envelope.To] = append(m.msgs[envelope.To], envelope)
	return nil
}

func (m *Memory) Fetch(
	_ context.Context,
	recipient domain.Username,
	since int64,
) ([]domain.Envelope, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var envelopes []domain.Envelope
	for _, env := range m.msgs[recipient] {
		if env.Timestamp > since {
			envelopes = append(envelopes, env)
		}
	}
	return envelopes, nil
}

// Compile-time assertions against the collaborator contracts.
var (
	_ domain.Directory = (*Memory)(nil)
	_ domain.Relay     = (*Memory)(nil)
)
