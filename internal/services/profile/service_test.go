package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"urchat/internal/container"
	"urchat/internal/domain"
	"urchat/internal/relay"
	"urchat/internal/services/profile"
	"urchat/internal/store"
)

const (
	ns               = domain.NamespaceID("relay.example:6379")
	strongPassphrase = "Tr0ub4dor&three!"
)

func newService(t *testing.T) (*profile.Service, *relay.Memory) {
	t.Helper()
	profiles := store.NewProfileFileStore(t.TempDir(),
		container.New(container.Params{Time: 1, MemoryKiB: 64, Threads: 1}))
	directory := relay.NewMemory()
	return profile.New(profiles, directory, ns), directory
}

func TestRegisterLogin(t *testing.T) {
	svc, directory := newService(t)
	ctx := context.Background()

	record, fp, err := svc.Register(ctx, "alice", strongPassphrase)
	require.NoError(t, err)
	require.Equal(t, domain.Username("alice"), record.Username)
	require.NotEmpty(t, fp)
	require.Contains(t, record.Namespaces, ns)

	// The identity key was published.
	published, err := directory.GetPublicKey(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, record.Identity.Public, published)

	loaded, err := svc.Login(ctx, strongPassphrase)
	require.NoError(t, err)
	require.Equal(t, record.Username, loaded.Username)
	require.Equal(t, record.Identity.Private, loaded.Identity.Private)
}

func TestRegister_WeakPassphrase(t *testing.T) {
	svc, _ := newService(t)

	for _, weak := range []string{
		"",
		"short1A!",
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigitsHere!",
		"NoSymbolsHere1",
	} {
		_, _, err := svc.Register(context.Background(), "alice", weak)
		require.ErrorIs(t, err, profile.ErrWeakPassphrase, "passphrase %q", weak)
	}
}

func TestRegister_PublishFailure(t *testing.T) {
	profiles := store.NewProfileFileStore(t.TempDir(),
		container.New(container.Params{Time: 1, MemoryKiB: 64, Threads: 1}))
	svc := profile.New(profiles, failingDirectory{}, ns)

	record, fp, err := svc.Register(context.Background(), "alice", strongPassphrase)
	require.ErrorIs(t, err, domain.ErrPublish)

	// The profile was still saved; the returned record and fingerprint let
	// the caller retry publication later.
	require.Equal(t, domain.Username("alice"), record.Username)
	require.NotEmpty(t, fp)
	exists, err := profiles.ProfileExists()
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLogin_WrongPassphrase(t *testing.T) {
	svc, _ := newService(t)
	_, _, err := svc.Register(context.Background(), "alice", strongPassphrase)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "Wrong-passphrase-1!")
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestLogin_NoProfile(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), strongPassphrase)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_NewNamespaceGetsKeypair(t *testing.T) {
	profiles := store.NewProfileFileStore(t.TempDir(),
		container.New(container.Params{Time: 1, MemoryKiB: 64, Threads: 1}))
	directory := relay.NewMemory()

	_, _, err := profile.New(profiles, directory, ns).Register(context.Background(), "alice", strongPassphrase)
	require.NoError(t, err)

	// Same profile, different deployment: login mints a keypair for the new
	// namespace and keeps the old one.
	other := profile.New(profiles, directory, "other.example:6379")
	record, err := other.Login(context.Background(), strongPassphrase)
	require.NoError(t, err)
	require.Contains(t, record.Namespaces, ns)
	require.Contains(t, record.Namespaces, domain.NamespaceID("other.example:6379"))
}

func TestFingerprint(t *testing.T) {
	svc, _ := newService(t)
	_, fp, err := svc.Register(context.Background(), "alice", strongPassphrase)
	require.NoError(t, err)

	got, err := svc.Fingerprint(strongPassphrase)
	require.NoError(t, err)
	require.Equal(t, fp, got)
}

// failingDirectory rejects every publication.
type failingDirectory struct{}

func (failingDirectory) GetPublicKey(context.Context, domain.Username) (domain.PublicKey, error) {
	return domain.PublicKey{}, domain.ErrNotFound
}

func (failingDirectory) PutPublicKey(context.Context, domain.Username, domain.PublicKey) error {
	return errors.New("directory down")
}

func (failingDirectory) ListUsers(context.Context) ([]domain.Username, error) { return nil, nil }

func (failingDirectory) Ping(context.Context) error { return nil }
