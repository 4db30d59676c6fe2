// Package gateway is the typed request/response boundary to the six
// backend domains. Every operation is a single round-trip: no retries, no
// caching, no client-side timeout. Failures propagate to the caller as
// *gateway.Error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// TokenSource supplies the current session token; "" means none.
type TokenSource func() string

// Error is the uniform backend call failure: which domain, which
// operation, and the underlying cause (network error or non-2xx status).
type Error struct {
	Domain string
	Op     string
	Cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway: %s.%s: %v", e.Domain, e.Op, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// StatusError is the cause carried by Error for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Facade bundles one client per backend domain.
type Facade struct {
	Auth        *AuthClient
	User        *UserClient
	Workshop    *WorkshopClient
	Quiz        *QuizClient
	Analytics   *AnalyticsClient
	Certificate *CertificateClient
}

func New(conf *core.Config, hc *http.Client, tokens TokenSource) *Facade {
	return &Facade{
		Auth:        NewAuthClient(conf.API.AuthURL, hc, tokens),
		User:        NewUserClient(conf.API.UserURL, hc, tokens),
		Workshop:    NewWorkshopClient(conf.API.WorkshopURL, hc, tokens),
		Quiz:        NewQuizClient(conf.API.QuizURL, hc, tokens),
		Analytics:   NewAnalyticsClient(conf.API.AnalyticsURL, hc, tokens),
		Certificate: NewCertificateClient(conf.API.CertificateURL, hc, tokens),
	}
}

// client carries what every domain client shares.
type client struct {
	domain string
	base   string
	hc     *http.Client
	tokens TokenSource
}

func newClient(domain, base string, hc *http.Client, tokens TokenSource) client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return client{domain: domain, base: strings.TrimRight(base, "/"), hc: hc, tokens: tokens}
}

func (c *client) fail(op string, err error) *Error {
	return &Error{Domain: c.domain, Op: op, Cause: err}
}

// doJSON sends a JSON request (body may be nil) and decodes a JSON
// response into out (out may be nil).
func (c *client) doJSON(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return c.fail(op, errors.Wrap(err, "encoding request body"))
		}
		rdr = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, query, rdr)
	if err != nil {
		return c.fail(op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(op, req, out)
}

// doForm sends a form-encoded request; the login contract is the one
// place the platform uses it.
func (c *client) doForm(ctx context.Context, op, path string, form url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()))
	if err != nil {
		return c.fail(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(op, req, out)
}

func (c *client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if tok := c.tokens(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *client) send(op string, req *http.Request, out interface{}) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return c.fail(op, err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return c.fail(op, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))})
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return c.fail(op, errors.Wrap(err, "decoding response body"))
		}
	}
	return nil
}
