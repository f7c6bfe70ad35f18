// Package message sends and receives end-to-end encrypted messages through
// the relay, resolving inbound envelopes against the principal's full key
// history when the current key fails to authenticate.
package message
