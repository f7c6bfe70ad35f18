// Package relay implements the two external collaborators the core depends
// on: the public-key directory (username to current public key) and the
// store-and-forward message relay (opaque sealed blobs keyed by sender,
// recipient and timestamp).
//
// Two deployments are supported:
//
//   - Redis: the client talks directly to a shared redis instance, which is
//     the production setup.
//   - HTTP: clients without direct redis access talk JSON over HTTP to the
//     relay daemon (cmd/relay), which fronts redis or an in-memory backend.
//
// All operations accept a context for cancellation and deadlines. The relay
// never sees plaintext or private key material.
package relay
