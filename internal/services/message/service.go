package message

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"urchat/internal/crypto"
	"urchat/internal/domain"
	"urchat/internal/keyring"
)

// Service seals and sends messages via the directory and relay, and opens
// inbound envelopes with multi-key fallback.
//
// High-level flow:
//   - Send: fetch the recipient's current public key from the directory,
//     seal against it with our identity private key, hand the envelope to
//     the relay, append the plaintext to local history.
//   - Receive: fetch queued envelopes, look up each sender's current public
//     key, try the current identity key and then the retired chains; an
//     envelope no key opens is logged and skipped, never fatal to the batch.
type Service struct {
	directory domain.Directory
	relay     domain.Relay
	history   domain.HistoryStore
	logger    *logrus.Logger
}

// New constructs a message service with the given collaborators.
func New(
	directory domain.Directory,
	relay domain.Relay,
	history domain.HistoryStore,
	logger *logrus.Logger,
) *Service {
	return &Service{directory: directory, relay: relay, history: history, logger: logger}
}

// Send seals plaintext for to and stores the envelope on the relay. A
// recipient unknown to the directory surfaces domain.ErrNotFound.
func (s *Service) Send(
	ctx context.Context,
	record *domain.PrincipalRecord,
	passphrase string,
	to domain.Username,
	plaintext string,
) error {
	recipientKey, err := s.directory.GetPublicKey(ctx, to)
	if err != nil {
		return err
	}
	sealed, err := crypto.Seal(record.Identity.Private, recipientKey, plaintext)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	env := domain.Envelope{
		From:      record.Username,
		To:        to,
		Sealed:    sealed,
		Timestamp: now,
	}
	if err := s.relay.Store(ctx, env); err != nil {
		return err
	}
	return s.history.Append(passphrase, record.Username, domain.StoredMessage{
		Sender:    record.Username,
		Recipient: to,
		Content:   plaintext,
		Direction: domain.MessageSent,
		Timestamp: now,
	})
}

// Receive fetches envelopes queued since the given timestamp and decrypts
// them. Undecryptable envelopes are skipped; decrypted ones are appended to
// local history and returned oldest first.
func (s *Service) Receive(
	ctx context.Context,
	record *domain.PrincipalRecord,
	passphrase string,
	since int64,
) ([]domain.DecryptedMessage, error) {
	envelopes, err := s.relay.Fetch(ctx, record.Username, since)
	if err != nil {
		return nil, err
	}

	var (
		decrypted []domain.DecryptedMessage
		stored    []domain.StoredMessage
	)
	for _, env := range envelopes {
		senderKey, err := s.directory.GetPublicKey(ctx, env.From)
		if err != nil {
			s.logger.WithField("from", env.From).WithError(err).
				Warn("skipping message: sender has no published key")
			continue
		}
		plaintext, err := s.open(record, senderKey, env.Sealed)
		if err != nil {
			s.logger.WithField("from", env.From).WithError(err).
				Warn("skipping undecryptable message")
			continue
		}
		decrypted = append(decrypted, domain.DecryptedMessage{
			From:      env.From,
			To:        env.To,
			Plaintext: plaintext,
			Timestamp: env.Timestamp,
		})
		stored = append(stored, domain.StoredMessage{
			Sender:    env.From,
			Recipient: env.To,
			Content:   plaintext,
			Direction: domain.MessageReceived,
			Timestamp: env.Timestamp,
		})
	}
	if len(stored) > 0 {
		if err := s.history.Append(passphrase, record.Username, stored...); err != nil {
			return decrypted, err
		}
	}
	return decrypted, nil
}

// open tries every private key the principal has ever held against the
// sealed payload: the current identity key first, then retired identity
// keys oldest first, then each namespace's current and retired keypairs.
// Authentication failures move to the next candidate; a decode failure
// stops the search since the tag already verified.
func (s *Service) open(
	record *domain.PrincipalRecord,
	senderKey domain.PublicKey,
	sealed []byte,
) (string, error) {
	for _, priv := range candidateKeys(record) {
		plaintext, err := crypto.Open(priv, senderKey, sealed)
		if err == nil {
			return plaintext, nil
		}
		if errors.Is(err, domain.ErrAuthentication) || errors.Is(err, domain.ErrFormat) {
			continue
		}
		return "", err
	}
	return "", fmt.Errorf("sealed payload: %w", domain.ErrUndecryptable)
}

func candidateKeys(record *domain.PrincipalRecord) []domain.PrivateKey {
	keys := []domain.PrivateKey{record.Identity.Private}
	for _, kp := range record.RetiredIdentities {
		keys = append(keys, kp.Private)
	}

	namespaces := make([]domain.NamespaceID, 0, len(record.Namespaces))
	for ns := range record.Namespaces {
		namespaces = append(namespaces, ns)
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i] < namespaces[j] })

	for _, ns := range namespaces {
		if current, err := keyring.Current(record, ns); err == nil {
			keys = append(keys, current.Private)
		}
		for _, kp := range keyring.Retired(record, ns) {
			keys = append(keys, kp.Private)
		}
	}
	return keys
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
