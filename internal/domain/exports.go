package domain

import (
	interfaces "urchat/internal/domain/interfaces"
	types "urchat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username          = types.Username
	NamespaceID       = types.NamespaceID
	Fingerprint       = types.Fingerprint
	PublicKey         = types.PublicKey
	PrivateKey        = types.PrivateKey
	Keypair           = types.Keypair
	NamespacedKeypair = types.NamespacedKeypair
	NamespaceKeys     = types.NamespaceKeys
	PrincipalRecord   = types.PrincipalRecord
	Envelope          = types.Envelope
	DecryptedMessage  = types.DecryptedMessage
	StoredMessage     = types.StoredMessage
)

// Message direction markers re-exported from the types subpackage.
const (
	MessageSent     = types.MessageSent
	MessageReceived = types.MessageReceived
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Directory      = interfaces.Directory
	Relay          = interfaces.Relay
	ProfileStore   = interfaces.ProfileStore
	HistoryStore   = interfaces.HistoryStore
	ProfileService = interfaces.ProfileService
	MessageService = interfaces.MessageService
)
