/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"moul.io/http2curl"

	"github.com/objectrocket/objectrocket-go/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client communicates with the ObjectRocket management API on behalf of a
// single API key. It holds no mutable shared state and is safe for
// concurrent use. Every operation is one synchronous request; nothing is
// cached or retried locally.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
	curlDebug  bool
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller owns
// transport configuration such as TLS and proxies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a logger for debug-level request logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithCurlDebug logs every outbound request as an equivalent curl command.
// The dump includes the API key; use only against test environments.
func WithCurlDebug() Option {
	return func(c *Client) {
		c.curlDebug = true
	}
}

// New constructs a Client bound to the credential in cfg. The credential is
// required up front; whether the remote service accepts it is only known on
// first use.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.ErrNoAPIKey
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the wire frame wrapping every API response. rc 0 means
// success and data holds the payload; any other rc is an API-level failure
// described by msg.
type envelope struct {
	RC   int                 `json:"rc"`
	Msg  string              `json:"msg"`
	Data jsoniter.RawMessage `json:"data"`
}

// call posts one form-encoded request to the given API stub and decodes the
// response envelope's data payload into out. The api_key field rides in the
// form body on every call; doc, when non-nil, is JSON-encoded into the doc
// field the same way the service's own tooling submits it.
func (c *Client) call(ctx context.Context, stub string, doc interface{}, out interface{}) error {
	form := url.Values{}
	form.Set("api_key", c.cfg.APIKey)
	if doc != nil {
		payload, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode doc: %w", err)
		}
		form.Set("doc", string(payload))
	}

	reqURL := strings.TrimRight(c.cfg.APIServer, "/") + "/" + strings.TrimLeft(stub, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.NewNetworkError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/plain,application/json")
	req.Header.Set("User-Agent", UserAgent())

	if c.curlDebug {
		if cmd, cerr := http2curl.GetCurlCommand(req); cerr == nil {
			c.log.Debug().Str("curl", cmd.String()).Msg("outbound request")
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("stub", stub).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("api call")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewAuthenticationError(resp.StatusCode, strings.TrimSpace(string(body)))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return errors.NewServiceError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.NewDecodingError(err)
	}
	if env.RC != 0 {
		msg := env.Msg
		if msg == "" {
			msg = fmt.Sprintf("no msg provided (%s)", string(env.Data))
		}
		return errors.NewAPIError(env.RC, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.NewDecodingError(err)
		}
	}
	return nil
}
