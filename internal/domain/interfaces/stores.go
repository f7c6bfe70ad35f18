package interfaces

import domaintypes "urchat/internal/domain/types"

// ProfileStore persists a principal record inside an encrypted container.
type ProfileStore interface {
	SaveProfile(passphrase string, record domaintypes.PrincipalRecord) error
	LoadProfile(passphrase string) (domaintypes.PrincipalRecord, error)
	ProfileExists() (bool, error)
}

// HistoryStore keeps a per-user encrypted log of sent and received messages.
type HistoryStore interface {
	Append(
		passphrase string,
		user domaintypes.Username,
		messages ...domaintypes.StoredMessage,
	) error

	// List returns the most recent limit messages exchanged with peer,
	// oldest first. A zero limit returns everything; an empty peer matches
	// all conversations.
	List(
		passphrase string,
		user domaintypes.Username,
		peer domaintypes.Username,
		limit int,
	) ([]domaintypes.StoredMessage, error)

	Backup(passphrase string, user domaintypes.Username, dst, backupPassphrase string) error
	Restore(passphrase string, user domaintypes.Username, src, backupPassphrase string) error
}
