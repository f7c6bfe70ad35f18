// Package container implements the encrypted-at-rest container format used
// to persist secrets: the principal profile, local message history and
// backups.
//
// A container is self-describing; everything needed to decrypt it (apart
// from the passphrase) is embedded in its fixed binary framing:
//
//	salt(16) | nonce(12) | tag(16) | assoc_len(2, BE) | associated_data | ciphertext
//
// The symmetric key is derived from the passphrase with Argon2id, and the
// payload is sealed with AES-256-GCM. The associated data carries a format
// tag and generation timestamp, authenticated but not encrypted.
//
// The KDF is intentionally slow (hundreds of milliseconds with the default
// parameters); callers should not run it on a latency-sensitive path.
package container
