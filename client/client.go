package client

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http2"

	"github.com/vitalvas/edgegrid/auth"
	"github.com/vitalvas/edgegrid/edgerc"
)

// defaultTimeout bounds each request unless WithTimeout overrides it.
const defaultTimeout = 2 * time.Minute

// Client makes signed requests against a single Akamai API host.
type Client struct {
	httpClient    *http.Client
	credentials   *auth.Credentials
	baseURL       *url.URL
	headersToSign []string

	// construction-time settings collected by options
	base      *http.Transport
	tlsConfig *tls.Config
	timeout   time.Duration
	rawBase   string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the base transport used under the signing layer.
// Useful for proxy and connection-pool settings.
func WithTransport(base *http.Transport) Option {
	return func(c *Client) { c.base = base }
}

// WithTLSConfig sets the TLS configuration for the base transport. HTTP/2
// is enabled on the resulting transport.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) { c.tlsConfig = cfg }
}

// WithHeadersToSign lists request headers covered by the signature, in
// canonicalization order.
func WithHeadersToSign(names ...string) Option {
	return func(c *Client) { c.headersToSign = names }
}

// WithTimeout sets the per-request timeout. Defaults to two minutes.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithBaseURL overrides the URL requests are built against. The default is
// "https://" plus the credential host. Intended for tests and staging
// networks.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) { c.rawBase = rawURL }
}

// New creates a Client for the given credentials.
func New(creds *auth.Credentials, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, auth.ErrNoCredentials
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		credentials: creds,
		timeout:     defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	rawBase := c.rawBase
	if rawBase == "" {
		rawBase = "https://" + creds.Host
	}

	baseURL, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	c.baseURL = baseURL

	base := c.base
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	if c.tlsConfig != nil {
		base.TLSClientConfig = c.tlsConfig
		if err := http2.ConfigureTransport(base); err != nil {
			return nil, fmt.Errorf("client: configure http2: %w", err)
		}
	}

	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: auth.NewTransport(base, auth.SignConfig{
			Credentials:   creds,
			HeadersToSign: c.headersToSign,
		}),
	}

	return c, nil
}

// NewFromEdgerc creates a Client from an .edgerc file section, consulting
// AKAMAI_* environment variables first.
func NewFromEdgerc(path, section string, opts ...Option) (*Client, error) {
	creds, err := edgerc.Load(path, section)
	if err != nil {
		return nil, err
	}

	return New(creds, opts...)
}

// Get starts a GET request for path.
func (c *Client) Get(path string) *Request { return c.newRequest(http.MethodGet, path) }

// Head starts a HEAD request for path.
func (c *Client) Head(path string) *Request { return c.newRequest(http.MethodHead, path) }

// Post starts a POST request for path.
func (c *Client) Post(path string) *Request { return c.newRequest(http.MethodPost, path) }

// Put starts a PUT request for path.
func (c *Client) Put(path string) *Request { return c.newRequest(http.MethodPut, path) }

// Patch starts a PATCH request for path.
func (c *Client) Patch(path string) *Request { return c.newRequest(http.MethodPatch, path) }

// Delete starts a DELETE request for path.
func (c *Client) Delete(path string) *Request { return c.newRequest(http.MethodDelete, path) }

func (c *Client) newRequest(method, path string) *Request {
	return &Request{
		client: c,
		method: method,
		path:   path,
		query:  url.Values{},
		header: http.Header{},
	}
}
