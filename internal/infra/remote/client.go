package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"order-fulfillment/internal/pkg/errs"
)

// ErrUnreachable marks a transport-level failure: connection refused, DNS
// failure, or a call that blew its deadline. Only this class of error is
// eligible for fallback substitution; a decoded error response never is.
var ErrUnreachable = errs.New("remote service unreachable")

// StatusMapper translates a well-formed non-2xx response into a domain
// error. Statuses without an entry fall through to the client's generic
// remote error.
type StatusMapper map[int]error

type Client struct {
	name    string
	baseURL string
	http    *http.Client
	status  StatusMapper
}

func NewClient(name, baseURL string, timeout time.Duration, status StatusMapper) *Client {
	return &Client{
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		status:  status,
	}
}

// Do performs one JSON round trip. body and out may be nil. Transport
// failures come back marked with both ErrUnreachable and
// errs.ErrRemoteUnavailable; decoded statuses come back as their mapped
// domain error only.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, c.name+": failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, c.name+": failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Mark(errs.Wrap(err, c.name+": call failed"), ErrUnreachable), errs.ErrRemoteUnavailable)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if mapped, ok := c.status[resp.StatusCode]; ok {
			return mapped
		}
		return errs.Mark(errs.Newf("%s: unexpected status %d", c.name, resp.StatusCode), errs.ErrRemoteUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Mark(errs.Wrap(err, c.name+": failed to decode response"), errs.ErrRemoteUnavailable)
		}
	}

	return nil
}
