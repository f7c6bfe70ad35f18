// Package crypto exposes the message-level primitives used by urchat.
//
// Contents
//
//   - Curve25519 keypair generation (GenerateKeypair,
//     GenerateNamespacedKeypair)
//   - Per-message public-key authenticated encryption between two
//     principals (Seal, Open)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// Message encryption is deliberately independent of the container format in
// package container: it has no KDF and is cheap enough for many small
// messages.
package crypto
