package container

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/argon2"

	"urchat/internal/domain"
	"urchat/internal/util/memzero"
)

// Fixed field widths of the container byte format. The layout is
//
//	salt(16) | nonce(12) | tag(16) | assoc_len(2, big-endian) | associated_data | ciphertext
//
// and must be reproduced bit-exact for cross-implementation compatibility.
const (
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16
	KeySize   = 32

	headerSize = SaltSize + NonceSize + TagSize + 2
)

const formatTag = "urchat v2"

// Params are the Argon2id cost parameters baked into a Codec. Both sides of
// a container exchange must agree on them; the format does not embed them.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultParams make offline brute force on weak passphrases materially
// expensive (roughly 256 MiB and a few hundred milliseconds per guess on
// commodity hardware) while staying tractable for interactive use.
var DefaultParams = Params{Time: 3, MemoryKiB: 1 << 18, Threads: 4}

// Codec encrypts and decrypts self-describing containers under a passphrase.
type Codec struct {
	params Params
}

// New returns a codec with explicit KDF parameters.
func New(p Params) Codec { return Codec{params: p} }

// Default returns a codec with the production KDF parameters.
func Default() Codec { return Codec{params: DefaultParams} }

// Encrypt seals plaintext under a key derived from password. Every call
// draws a fresh salt and nonce; containers are never reused or patched in
// place. The associated data (format tag plus a generation timestamp) is
// authenticated but stored in the clear so a container's provenance is
// checkable without decrypting it.
func (c Codec) Encrypt(plaintext []byte, password string) ([]byte, error) {
	var salt [SaltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}

	associated := fmt.Sprintf("%s - %s", formatTag, time.Now().UTC().Format(time.RFC3339))

	key := c.deriveKey(password, salt[:])
	defer memzero.Zero(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Seal appends the 16-byte tag after the ciphertext; the container
	// format carries the tag in the header instead.
	sealed := aead.Seal(nil, nonce[:], plaintext, []byte(associated))
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	out := make([]byte, 0, headerSize+len(associated)+len(ciphertext))
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	out = append(out, tag...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(associated)))
	out = append(out, associated...)
	out = append(out, ciphertext...)
	return out, nil
}

// Decrypt re-derives the key from the embedded salt and opens the container.
// It returns domain.ErrFormat for truncated or inconsistent framing and
// domain.ErrAuthentication when the tag does not verify, without
// distinguishing a wrong password from corruption or tampering.
func (c Codec) Decrypt(data []byte, password string) ([]byte, error) {
	salt, nonce, tag, associated, ciphertext, err := split(data)
	if err != nil {
		return nil, err
	}

	key := c.deriveKey(password, salt)
	defer memzero.Zero(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, associated)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return plaintext, nil
}

// AssociatedData returns the clear-text associated data of a container
// without decrypting it. Note it is only authenticated by a successful
// Decrypt; on its own it proves nothing.
func AssociatedData(data []byte) (string, error) {
	_, _, _, associated, _, err := split(data)
	if err != nil {
		return "", err
	}
	return string(associated), nil
}

func (c Codec) deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		c.params.Time,
		c.params.MemoryKiB,
		c.params.Threads,
		KeySize,
	)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func split(data []byte) (salt, nonce, tag, associated, ciphertext []byte, err error) {
	if len(data) < headerSize {
		return nil, nil, nil, nil, nil, domain.ErrFormat
	}
	salt = data[:SaltSize]
	nonce = data[SaltSize : SaltSize+NonceSize]
	tag = data[SaltSize+NonceSize : SaltSize+NonceSize+TagSize]
	assocLen := int(binary.BigEndian.Uint16(data[SaltSize+NonceSize+TagSize : headerSize]))
	if len(data) < headerSize+assocLen {
		return nil, nil, nil, nil, nil, domain.ErrFormat
	}
	associated = data[headerSize : headerSize+assocLen]
	ciphertext = data[headerSize+assocLen:]
	return salt, nonce, tag, associated, ciphertext, nil
}
