// Package profile manages principal registration and login: identity
// creation, passphrase policy, container-backed persistence and publication
// of the identity public key.
package profile
