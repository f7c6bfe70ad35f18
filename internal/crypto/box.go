package crypto

import (
	"crypto/rand"
	"unicode/utf8"

	"golang.org/x/crypto/nacl/box"

	"urchat/internal/domain"
)

// BoxNonceSize is the random nonce prefixed to every sealed message.
const BoxNonceSize = 24

// Seal encrypts plaintext from the sender to the recipient using the box
// construction (X25519 agreement plus an authenticated cipher). The output
// is nonce followed by the authenticated ciphertext. There is no replay
// protection and no forward secrecy beyond key rotation; a compromised
// private key exposes every message sealed under it.
func Seal(
	senderPriv domain.PrivateKey,
	recipientPub domain.PublicKey,
	plaintext string,
) ([]byte, error) {
	var nonce [BoxNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	priv := [32]byte(senderPriv)
	pub := [32]byte(recipientPub)
	return box.Seal(nonce[:], []byte(plaintext), &nonce, &pub, &priv), nil
}

// Open authenticates and decrypts a sealed message. It returns
// domain.ErrFormat for a payload too short to contain a nonce and tag,
// domain.ErrAuthentication when the tag does not verify under the derived
// shared secret, and domain.ErrDecode when the plaintext is not valid UTF-8.
func Open(
	recipientPriv domain.PrivateKey,
	senderPub domain.PublicKey,
	sealed []byte,
) (string, error) {
	if len(sealed) < BoxNonceSize+box.Overhead {
		return "", domain.ErrFormat
	}
	var nonce [BoxNonceSize]byte
	copy(nonce[:], sealed[:BoxNonceSize])

	priv := [32]byte(recipientPriv)
	pub := [32]byte(senderPub)
	plaintext, ok := box.Open(nil, sealed[BoxNonceSize:], &nonce, &pub, &priv)
	if !ok {
		return "", domain.ErrAuthentication
	}
	if !utf8.Valid(plaintext) {
		return "", domain.ErrDecode
	}
	return string(plaintext), nil
}
