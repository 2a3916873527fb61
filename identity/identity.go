// Package identity implements the client side of the gateway's one
// external collaborator: the identity service that owns access keys
// and the users they belong to. Only the RPC surface the gateway
// consumes is implemented here; user/key management lives entirely in
// the identity service.
package identity

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Key is one access-key record as the identity service streams or
// returns it.
type Key struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	UserID    string `json:"user_id"`
}

// Client is a long-lived handle to the identity service, reused across
// calls rather than reconnecting per request.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client pointed at the identity service's address
// (spec's `iam_address` configuration key).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// StreamKeys fetches the full key set as newline-delimited JSON and
// invokes fn for each record. Used by the key cache's periodic
// refresh; a non-nil return stops the stream early.
func (c *Client) StreamKeys(ctx context.Context, fn func(Key) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/keys/stream", nil)
	if err != nil {
		return errors.Wrap(err, "failed to build stream-keys request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach identity service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var k Key
		if err := json.Unmarshal(line, &k); err != nil {
			return errors.Wrap(err, "failed to decode key record")
		}
		if err := fn(k); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// GetKey fetches a single access key's record on demand, returning
// ok=false if the identity service reports it doesn't exist.
func (c *Client) GetKey(ctx context.Context, accessKey string) (Key, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/keys/"+accessKey, nil)
	if err != nil {
		return Key{}, false, errors.Wrap(err, "failed to build get-key request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Key{}, false, errors.Wrap(err, "failed to reach identity service")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Key{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return Key{}, false, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var k Key
	if err := json.NewDecoder(resp.Body).Decode(&k); err != nil {
		return Key{}, false, errors.Wrap(err, "failed to decode key record")
	}

	return k, true, nil
}
