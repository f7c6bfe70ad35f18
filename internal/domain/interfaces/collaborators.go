package interfaces

import (
	"context"

	domaintypes "urchat/internal/domain/types"
)

// Directory is the public-key directory collaborator: username to current
// identity public key.
type Directory interface {
	GetPublicKey(
		ctx context.Context,
		username domaintypes.Username,
	) (domaintypes.PublicKey, error)
	PutPublicKey(
		ctx context.Context,
		username domaintypes.Username,
		key domaintypes.PublicKey,
	) error
	ListUsers(ctx context.Context) ([]domaintypes.Username, error)
	Ping(ctx context.Context) error
}

// Relay is the store-and-forward message relay collaborator. It stores and
// returns opaque sealed blobs; it never sees plaintext or key material.
type Relay interface {
	Store(ctx context.Context, envelope domaintypes.Envelope) error

	// Fetch returns the envelopes queued for recipient with a timestamp
	// strictly greater than since. Pass zero for everything.
	Fetch(
		ctx context.Context,
		recipient domaintypes.Username,
		since int64,
	) ([]domaintypes.Envelope, error)
}
