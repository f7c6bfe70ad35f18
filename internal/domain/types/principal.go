package types

// NamespaceKeys tracks one namespace's rotating keypair: exactly one current
// keypair (nil before the namespace has been touched) and its retired
// predecessors, ordered oldest first.
type NamespaceKeys struct {
	Current *NamespacedKeypair  `json:"current,omitempty"`
	Retired []NamespacedKeypair `json:"retired,omitempty"`
}

// PrincipalRecord is the root persisted entity for one user. It is only ever
// serialised inside an encrypted container, and it is mutated exclusively by
// the key lifecycle and rotation code; everything else reads it.
type PrincipalRecord struct {
	Username Username `json:"username"`

	// Identity is the long-lived keypair other principals seal messages
	// against. Rotation replaces it wholesale; the predecessor moves into
	// RetiredIdentities so pre-rotation traffic stays readable.
	Identity          NamespacedKeypair   `json:"identity_keypair"`
	RetiredIdentities []NamespacedKeypair `json:"retired_identity_keypairs,omitempty"`

	Namespaces map[NamespaceID]*NamespaceKeys `json:"namespaces"`
}
