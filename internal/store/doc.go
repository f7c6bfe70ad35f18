// Package store provides file-based persistence for urchat's secrets.
//
// Every file is an encrypted container (see package container); writes go
// through a temp file and rename so a partially written file can never
// replace a good one. All methods are concurrency-safe via internal locking.
// Stored files live under the user's configured home directory.
//
// The package includes stores for:
//   - The principal profile (ProfileFileStore)
//   - Local message history and its backups (HistoryFileStore)
package store
