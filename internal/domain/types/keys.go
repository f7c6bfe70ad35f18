package types

import "time"

// PublicKey is a Curve25519 public key.
type PublicKey [32]byte

// Slice returns the key as a []byte.
func (k PublicKey) Slice() []byte { return k[:] }

// PrivateKey is a Curve25519 private key.
type PrivateKey [32]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// Keypair is an asymmetric keypair used for box encryption.
type Keypair struct {
	Private PrivateKey `json:"private_key"`
	Public  PublicKey  `json:"public_key"`
}

// NamespacedKeypair is a keypair together with its creation time, used for
// rotation-staleness decisions and fallback ordering.
type NamespacedKeypair struct {
	Keypair
	CreatedAt time.Time `json:"created_at"`
}
