package relay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"urchat/internal/domain"
)

const (
	pubkeyKeyPrefix = "urchat:pubkey:"
	msgKeyPrefix    = "urchat:msg:"
)

// Redis talks directly to a shared redis deployment acting as both the
// public-key directory and the message relay. Public keys are stored as
// base64 strings under urchat:pubkey:<user>; envelopes are JSON entries in
// the per-recipient list urchat:msg:<user>.
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps an existing client.
func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

func (r *Redis) GetPublicKey(
	ctx context.Context,
	username domain.Username,
) (domain.PublicKey, error) {
	val, err := r.rdb.Get(ctx, pubkeyKeyPrefix+username.String()).Result()
	if err == redis.Nil {
		return domain.PublicKey{}, fmt.Errorf("public key for %q: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.PublicKey{}, err
	}
	return decodePublicKey(val)
}

func (r *Redis) PutPublicKey(
	ctx context.Context,
	username domain.Username,
	key domain.PublicKey,
) error {
	val := base64.StdEncoding.EncodeToString(key.Slice())
	return r.rdb.Set(ctx, pubkeyKeyPrefix+username.String(), val, 0).Err()
}

func (r *Redis) ListUsers(ctx context.Context) ([]domain.Username, error) {
	var (
		users  []domain.Username
		cursor uint64
	)
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, pubkeyKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			users = append(users, domain.Username(strings.TrimPrefix(k, pubkeyKeyPrefix)))
		}
		if next == 0 {
			return users, nil
		}
		cursor = next
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Store(ctx context.Context, envelope domain.Envelope) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, msgKeyPrefix+envelope.To.String(), raw).Err()
}

func (r *Redis) Fetch(
	ctx context.Context,
	recipient domain.Username,
	since int64,
) ([]domain.Envelope, error) {
	entries, err := r.rdb.LRange(ctx, msgKeyPrefix+recipient.String(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	var envelopes []domain.Envelope
	for _, entry := range entries {
		var env domain.Envelope
		if err := json.Unmarshal([]byte(entry), &env); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
		}
		if env.Timestamp > since {
			envelopes = append(envelopes, env)
		}
	}
	return envelopes, nil
}

func decodePublicKey(val string) (domain.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(val)
	if err != nil || len(raw) != 32 {
		return domain.PublicKey{}, fmt.Errorf("%w: bad public key encoding", domain.ErrFormat)
	}
	var key domain.PublicKey
	copy(key[:], raw)
	return key, nil
}

// Compile-time assertions against the collaborator contracts.
var (
	_ domain.Directory = (*Redis)(nil)
	_ domain.Relay     = (*Redis)(nil)
)
