package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"urchat/internal/container"
	"urchat/internal/crypto"
	"urchat/internal/domain"
	"urchat/internal/keyring"
	"urchat/internal/store"
)

// lightCodec keeps the KDF cheap so the suite stays fast.
func lightCodec() container.Codec {
	return container.New(container.Params{Time: 1, MemoryKiB: 64, Threads: 1})
}

func testRecord(t *testing.T) domain.PrincipalRecord {
	t.Helper()
	identity, err := crypto.GenerateNamespacedKeypair(time.Now().UTC())
	require.NoError(t, err)
	record := domain.PrincipalRecord{Username: "alice", Identity: identity}
	_, err = keyring.EnsureNamespace(&record, "relay.example:6379", time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestProfileFileStore_SaveLoad(t *testing.T) {
	s := store.NewProfileFileStore(t.TempDir(), lightCodec())
	record := testRecord(t)

	require.NoError(t, s.SaveProfile("correct horse battery", record))

	loaded, err := s.LoadProfile("correct horse battery")
	require.NoError(t, err)
	require.Equal(t, record.Username, loaded.Username)
	require.Equal(t, record.Identity.Public, loaded.Identity.Public)
	require.Equal(t, record.Identity.Private, loaded.Identity.Private)
	require.Len(t, loaded.Namespaces, 1)
}

func TestProfileFileStore_WrongPassphrase(t *testing.T) {
	s := store.NewProfileFileStore(t.TempDir(), lightCodec())
	require.NoError(t, s.SaveProfile("correct horse battery", testRecord(t)))

	_, err := s.LoadProfile("incorrect horse battery")
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestProfileFileStore_Missing(t *testing.T) {
	s := store.NewProfileFileStore(t.TempDir(), lightCodec())

	_, err := s.LoadProfile("whatever")
	require.ErrorIs(t, err, domain.ErrNotFound)

	exists, err := s.ProfileExists()
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProfileFileStore_Exists(t *testing.T) {
	s := store.NewProfileFileStore(t.TempDir(), lightCodec())
	require.NoError(t, s.SaveProfile("correct horse battery", testRecord(t)))

	exists, err := s.ProfileExists()
	require.NoError(t, err)
	require.True(t, exists)
}

func TestProfileFileStore_SaveReplaces(t *testing.T) {
	s := store.NewProfileFileStore(t.TempDir(), lightCodec())
	first := testRecord(t)
	require.NoError(t, s.SaveProfile("correct horse battery", first))

	second := first
	second.Username = "alice-renamed"
	require.NoError(t, s.SaveProfile("correct horse battery", second))

	loaded, err := s.LoadProfile("correct horse battery")
	require.NoError(t, err)
	require.Equal(t, domain.Username("alice-renamed"), loaded.Username)
}
