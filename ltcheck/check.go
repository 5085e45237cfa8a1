// Package ltcheck is a client for LanguageTool-compatible grammar and
// spell-checking services, plus the in-memory model used to review what
// they flag: typed errors, whitelist tagging and a navigation cursor.
package ltcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"

	"github.com/Alfex4936/ltcheck/internal/chunk"
	"github.com/Alfex4936/ltcheck/internal/model"
	"github.com/Alfex4936/ltcheck/internal/net"
	"github.com/Alfex4936/ltcheck/internal/parse"
)

// Language is one language offered by the service.
type Language = model.Language

// DefaultLanguage is used when Options.DefaultLanguage is empty.
const DefaultLanguage = "en-US"

// DefaultMaxChars is the per-request limit of the public API free tier.
const DefaultMaxChars = chunk.DefaultMaxChars

// Options configures a Client. The zero value of each field except
// MaxChars selects a default; MaxChars <= 0 disables the length guard.
type Options struct {
	BaseURL         string
	DefaultLanguage string
	MaxChars        int
	Timeout         time.Duration
	UserAgent       string
	Doer            net.Doer // transport; a tls-client is built when nil
}

// Client talks to one checking service. Calls block until the response
// arrives or ctx ends.
type Client struct {
	baseURL  string
	lang     string
	maxChars int
	ua       string
	doer     net.Doer
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	c := &Client{
		baseURL:  opts.BaseURL,
		lang:     opts.DefaultLanguage,
		maxChars: opts.MaxChars,
		ua:       opts.UserAgent,
		doer:     opts.Doer,
	}
	if c.baseURL == "" {
		c.baseURL = net.DefaultBaseURL
	}
	if c.lang == "" {
		c.lang = DefaultLanguage
	}
	if c.doer == nil {
		d, err := net.NewClient(opts.Timeout)
		if err != nil {
			return nil, fmt.Errorf("ltcheck: transport: %w", err)
		}
		c.doer = d
	}
	return c, nil
}

// DefaultLanguage returns the fallback language code.
func (c *Client) DefaultLanguage() string { return c.lang }

// MaxChars returns the per-request limit, <= 0 when disabled.
func (c *Client) MaxChars() int { return c.maxChars }

// ValidateLength fails with *QuotaExceededError when text has more than
// limit characters. limit <= 0 accepts anything.
func ValidateLength(text string, limit int) error {
	if n, over := chunk.Exceeds(text, limit); over {
		return &QuotaExceededError{Limit: limit, Length: n}
	}
	return nil
}

// Check submits text in the given language and returns what the service
// flagged, in the service's order. The result is nil when nothing was
// found. Errors whose word is in whitelist come back tagged Whitelisted.
//
// The language code is passed through unchecked.
func (c *Client) Check(ctx context.Context, text, language string, whitelist []string) ([]*Error, error) {
	if err := ValidateLength(text, c.maxChars); err != nil {
		return nil, err
	}
	if language == "" {
		language = c.lang
	}

	form := url.Values{"text": {text}, "language": {language}}
	body, err := c.do(ctx, "check", http.MethodPost, "check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	return Parse(body, whitelist)
}

// Languages lists the languages the service supports.
//
// It never fails: on any error, or an empty list, it logs and returns a
// single entry built from the default language code. Callers can treat a
// one-entry result as "discovery degraded".
func (c *Client) Languages(ctx context.Context) []Language {
	langs, err := c.languages(ctx)
	if err != nil {
		log.Printf("ltcheck: languages unavailable, falling back to %q: %v", c.lang, err)
	} else if len(langs) == 0 {
		log.Printf("ltcheck: service returned no languages, falling back to %q", c.lang)
	}
	if err != nil || len(langs) == 0 {
		return []Language{c.fallback()}
	}
	return langs
}

func (c *Client) languages(ctx context.Context) ([]Language, error) {
	body, err := c.do(ctx, "languages", http.MethodGet, "languages", nil)
	if err != nil {
		return nil, err
	}
	langs, err := parse.Languages(body)
	if err != nil {
		return nil, &MalformedResponseError{Index: -1, Field: "languages", Err: err}
	}
	return langs, nil
}

func (c *Client) fallback() Language {
	return Language{Name: c.lang, Code: c.lang, LongCode: c.lang}
}

// FindLanguage looks key up by display name (case-insensitive), code or
// long code.
func FindLanguage(langs []Language, key string) (Language, bool) {
	for _, l := range langs {
		if l.Code == key || l.LongCode == key || strings.EqualFold(l.Name, key) {
			return l, true
		}
	}
	return Language{}, false
}

/***----- private -----***/

// maxBody caps how much of a response, or of an unbounded request to the
// server, is read.
const maxBody = 16 << 20

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("ctx is nil")
	}

	endpoint := net.Endpoint(c.baseURL, path)
	var (
		req *http.Request
		err error
	)
	switch method {
	case http.MethodGet:
		req, err = net.NewGET(ctx, endpoint, c.ua)
	case http.MethodPost:
		req, err = net.NewPOST(ctx, endpoint, body, c.ua)
	default:
		return nil, &ServiceError{Op: op, Body: fmt.Sprintf("%s is not a valid verb for this API", method)}
	}
	if err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &ServiceError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
