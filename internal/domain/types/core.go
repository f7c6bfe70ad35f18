package types

// Username represents a directory-registered identity.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// NamespaceID identifies one messaging deployment (a relay address). A
// principal keeps an independent rotating keypair per namespace so that a
// compromise of one deployment's key does not expose the others.
type NamespaceID string

// String returns the string form of the namespace identifier.
func (id NamespaceID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
