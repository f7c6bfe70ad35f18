package crypto

import (
	"crypto/rand"
	"time"

	"golang.org/x/crypto/nacl/box"

	"urchat/internal/domain"
)

// GenerateKeypair returns a fresh Curve25519 keypair suitable for the box
// construction.
func GenerateKeypair() (domain.Keypair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return domain.Keypair{}, err
	}
	return domain.Keypair{Private: domain.PrivateKey(*priv), Public: domain.PublicKey(*pub)}, nil
}

// GenerateNamespacedKeypair returns a fresh keypair stamped with now.
func GenerateNamespacedKeypair(now time.Time) (domain.NamespacedKeypair, error) {
	kp, err := GenerateKeypair()
	if err != nil {
		return domain.NamespacedKeypair{}, err
	}
	return domain.NamespacedKeypair{Keypair: kp, CreatedAt: now.UTC()}, nil
}
