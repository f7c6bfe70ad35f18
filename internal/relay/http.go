package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"urchat/internal/domain"
)

// pubkeyPayload is the JSON body for directory reads and writes.
type pubkeyPayload struct {
	PublicKey []byte `json:"public_key"`
}

// HTTP is a client for the relay daemon in cmd/relay, implementing the same
// directory and relay contracts as the direct redis client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the daemon at base.
func NewHTTP(base string) *HTTP { return &HTTP{Base: base, HTTP: http.DefaultClient} }

func (c *HTTP) GetPublicKey(
	ctx context.Context,
	username domain.Username,
) (domain.PublicKey, error) {
	var out pubkeyPayload
	err := c.getJSON(ctx, "/pubkey/"+url.PathEscape(username.String()), &out)
	if err != nil {
		return domain.PublicKey{}, err
	}
	if len(out.PublicKey) != 32 {
		return domain.PublicKey{}, fmt.Errorf("%w: bad public key encoding", domain.ErrFormat)
	}
	var key domain.PublicKey
	copy(key[:], out.PublicKey)
	return key, nil
}

func (c *HTTP) PutPublicKey(
	ctx context.Context,
	username domain.Username,
	key domain.PublicKey,
) error {
	payload := pubkeyPayload{PublicKey: key.Slice()}
	return c.post(ctx, "/pubkey/"+url.PathEscape(username.String()), payload)
}

func (c *HTTP) ListUsers(ctx context.Context) ([]domain.Username, error) {
	var users []domain.Username
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTP) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay ping: %s", resp.Status)
	}
	return nil
}

func (c *HTTP) Store(ctx context.Context, envelope domain.Envelope) error {
	return c.post(ctx, "/msg/"+url.PathEscape(envelope.To.String()), envelope)
}

func (c *HTTP) Fetch(
	ctx context.Context,
	recipient domain.Username,
	since int64,
) ([]domain.Envelope, error) {
	path := "/msg/" + url.PathEscape(recipient.String())
	if since > 0 {
		path += "?since=" + strconv.FormatInt(since, 10)
	}
	var envelopes []domain.Envelope
	if err := c.getJSON(ctx, path, &envelopes); err != nil {
		return nil, err
	}
	return envelopes, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", path, resp.Status)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("relay get %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Compile-time assertions against the collaborator contracts.
var (
	_ domain.Directory = (*HTTP)(nil)
	_ domain.Relay     = (*HTTP)(nil)
)
