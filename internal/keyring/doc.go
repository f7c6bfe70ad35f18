// Package keyring holds and queries a principal record's namespace keypairs.
// It performs key generation but no encryption; every function operates on a
// record handle passed in by the caller, who is responsible for serialising
// concurrent mutation.
package keyring
