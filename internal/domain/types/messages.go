package types

// Envelope is the wire payload handed to the relay: an opaque sealed blob
// keyed by sender, recipient and timestamp.
type Envelope struct {
	From      Username `json:"from"`
	To        Username `json:"to"`
	Sealed    []byte   `json:"sealed"`
	Timestamp int64    `json:"timestamp"`
}

// DecryptedMessage is what the message service returns to callers.
type DecryptedMessage struct {
	From      Username `json:"from"`
	To        Username `json:"to"`
	Plaintext string   `json:"plaintext"`
	Timestamp int64    `json:"timestamp"`
}

// Message direction markers for the local history log.
const (
	MessageSent     = "sent"
	MessageReceived = "received"
)

// StoredMessage is one entry in a principal's local encrypted history.
type StoredMessage struct {
	Sender    Username `json:"sender"`
	Recipient Username `json:"recipient"`
	Content   string   `json:"content"`
	Direction string   `json:"direction"`
	Timestamp int64    `json:"timestamp"`
}
