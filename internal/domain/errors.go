package domain

import "errors"

// Sentinel errors for errors.Is() checks. Callers use these to decide
// between retriable and fatal conditions; the messages deliberately avoid
// stating which internal check failed.
var (
	// ErrFormat is returned for malformed container or message bytes. Not
	// retriable; the caller must supply a valid payload.
	ErrFormat = errors.New("malformed encrypted payload")

	// ErrAuthentication is returned when tag verification fails, whether
	// from a wrong passphrase, a wrong key pairing, corruption or
	// tampering. It is a single opaque category on purpose.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDecode is returned when an authenticated plaintext is not valid
	// UTF-8.
	ErrDecode = errors.New("plaintext is not valid UTF-8")

	// ErrNotFound is returned for an unknown namespace or username.
	ErrNotFound = errors.New("not found")

	// ErrPublish is returned when a directory write fails during rotation.
	// The in-memory rotation has already taken effect; the caller must
	// persist the rotated record and retry publication.
	ErrPublish = errors.New("public key publication failed")

	// ErrUndecryptable is returned when no key in the fallback chain opens
	// a message. Never fatal to a batch; log and skip.
	ErrUndecryptable = errors.New("message not decryptable with any known key")
)
