// Package net wraps the HTTP transport used to talk to the checking service.
package net

import (
	"context"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const (
	DefaultBaseURL   = "https://api.languagetool.org/v2"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Doer sends one request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient builds the shared transport (keep-alive, TLS session reuse).
// Redirects are not followed: the API answers directly or not at all.
func NewClient(timeout time.Duration) (Doer, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutMilliseconds(int(timeout / time.Millisecond)),
		tls_client.WithClientProfile(profiles.Chrome_124),
		tls_client.WithNotFollowRedirects(),
	}
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), opts...)
}

// Endpoint joins base and path with exactly one slash.
func Endpoint(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// NewGET builds a pre-populated GET request.
func NewGET(ctx context.Context, url, ua string) (*http.Request, error) {
	return newRequest(ctx, http.MethodGet, url, nil, ua)
}

// NewPOST builds a pre-populated form POST request.
func NewPOST(ctx context.Context, url string, body io.Reader, ua string) (*http.Request, error) {
	req, err := newRequest(ctx, http.MethodPost, url, body, ua)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func newRequest(ctx context.Context, method, url string, body io.Reader, ua string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
