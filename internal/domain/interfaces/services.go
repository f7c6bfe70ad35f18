package interfaces

import (
	"context"

	domaintypes "urchat/internal/domain/types"
)

// ProfileService creates, loads and inspects a principal's profile.
type ProfileService interface {
	Register(
		ctx context.Context,
		username domaintypes.Username,
		passphrase string,
	) (domaintypes.PrincipalRecord, domaintypes.Fingerprint, error)
	Login(ctx context.Context, passphrase string) (domaintypes.PrincipalRecord, error)
	Fingerprint(passphrase string) (domaintypes.Fingerprint, error)
}

// MessageService seals, sends, fetches and opens messages. The principal
// record is an explicit handle owned by the caller; concurrent use of the
// same record must be serialised by the caller.
type MessageService interface {
	Send(
		ctx context.Context,
		record *domaintypes.PrincipalRecord,
		passphrase string,
		to domaintypes.Username,
		plaintext string,
	) error
	Receive(
		ctx context.Context,
		record *domaintypes.PrincipalRecord,
		passphrase string,
		since int64,
	) ([]domaintypes.DecryptedMessage, error)
}
