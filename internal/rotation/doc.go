// Package rotation mutates a principal's key lifecycle: retiring the current
// namespace keypair, minting replacements for it and for the identity
// keypair, and publishing the new identity public key to the directory.
package rotation
