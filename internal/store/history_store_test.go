package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"urchat/internal/domain"
	"urchat/internal/store"
)

const historyPassphrase = "correct horse battery"

func msg(sender, recipient domain.Username, content string, ts int64) domain.StoredMessage {
	return domain.StoredMessage{
		Sender:    sender,
		Recipient: recipient,
		Content:   content,
		Direction: domain.MessageSent,
		Timestamp: ts,
	}
}

func TestHistoryFileStore_AppendList(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice",
		msg("alice", "bob", "hi bob", 1),
		msg("bob", "alice", "hi alice", 2),
	))
	require.NoError(t, s.Append(historyPassphrase, "alice",
		msg("alice", "carol", "hi carol", 3),
	))

	all, err := s.List(historyPassphrase, "alice", "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "hi bob", all[0].Content)
	require.Equal(t, "hi carol", all[2].Content)
}

func TestHistoryFileStore_ListPeerFilter(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice",
		msg("alice", "bob", "to bob", 1),
		msg("carol", "alice", "from carol", 2),
		msg("bob", "alice", "from bob", 3),
	))

	withBob, err := s.List(historyPassphrase, "alice", "bob", 0)
	require.NoError(t, err)
	require.Len(t, withBob, 2)
	require.Equal(t, "to bob", withBob[0].Content)
	require.Equal(t, "from bob", withBob[1].Content)
}

func TestHistoryFileStore_ListLimit(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice",
		msg("alice", "bob", "one", 1),
		msg("alice", "bob", "two", 2),
		msg("alice", "bob", "three", 3),
	))

	last, err := s.List(historyPassphrase, "alice", "", 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	require.Equal(t, "two", last[0].Content)
	require.Equal(t, "three", last[1].Content)
}

func TestHistoryFileStore_EmptyLog(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())

	got, err := s.List(historyPassphrase, "alice", "", 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestHistoryFileStore_WrongPassphrase(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())
	require.NoError(t, s.Append(historyPassphrase, "alice", msg("alice", "bob", "hi", 1)))

	_, err := s.List("not the passphrase", "alice", "", 0)
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestHistoryFileStore_PerUserIsolation(t *testing.T) {
	s := store.NewHistoryFileStore(t.TempDir(), lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice", msg("alice", "bob", "from alice", 1)))
	require.NoError(t, s.Append(historyPassphrase, "bob", msg("bob", "alice", "from bob", 2)))

	aliceLog, err := s.List(historyPassphrase, "alice", "", 0)
	require.NoError(t, err)
	require.Len(t, aliceLog, 1)
	require.Equal(t, "from alice", aliceLog[0].Content)
}

func TestHistoryFileStore_BackupRestore(t *testing.T) {
	dir := t.TempDir()
	s := store.NewHistoryFileStore(dir, lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice",
		msg("alice", "bob", "keep me", 1),
	))

	backup := filepath.Join(dir, "alice.backup")
	require.NoError(t, s.Backup(historyPassphrase, "alice", backup, "backup passphrase"))

	// Clobber the live log, then restore from the backup.
	require.NoError(t, s.Append(historyPassphrase, "alice", msg("alice", "bob", "noise", 2)))
	require.NoError(t, s.Restore(historyPassphrase, "alice", backup, "backup passphrase"))

	got, err := s.List(historyPassphrase, "alice", "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "keep me", got[0].Content)
}

func TestHistoryFileStore_BackupDefaultPassphrase(t *testing.T) {
	dir := t.TempDir()
	s := store.NewHistoryFileStore(dir, lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice", msg("alice", "bob", "hi", 1)))

	backup := filepath.Join(dir, "alice.backup")
	require.NoError(t, s.Backup(historyPassphrase, "alice", backup, ""))
	require.NoError(t, s.Restore(historyPassphrase, "alice", backup, ""))

	got, err := s.List(historyPassphrase, "alice", "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestHistoryFileStore_RestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	s := store.NewHistoryFileStore(dir, lightCodec())

	err := s.Restore(historyPassphrase, "alice", filepath.Join(dir, "no-such-backup"), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryFileStore_RestoreWrongBackupPassphrase(t *testing.T) {
	dir := t.TempDir()
	s := store.NewHistoryFileStore(dir, lightCodec())

	require.NoError(t, s.Append(historyPassphrase, "alice", msg("alice", "bob", "hi", 1)))
	backup := filepath.Join(dir, "alice.backup")
	require.NoError(t, s.Backup(historyPassphrase, "alice", backup, "backup passphrase"))

	err := s.Restore(historyPassphrase, "alice", backup, "wrong passphrase")
	require.ErrorIs(t, err, domain.ErrAuthentication)
}
