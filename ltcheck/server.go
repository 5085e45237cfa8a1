package ltcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Alfex4936/ltcheck/internal/util"
)

// DefaultRequestTimeout bounds one /v1/check call when the request sets none.
const DefaultRequestTimeout = 30 * time.Second

// CheckRequest is the HTTP request body for /v1/check
type CheckRequest struct {
	Text              string   `json:"text"`                        // text to check (required)
	Language          string   `json:"language,omitempty"`          // language code, server default if empty
	Words             []string `json:"words,omitempty"`             // extra whitelisted words
	IgnoreWhitelisted bool     `json:"ignoreWhitelisted,omitempty"` // drop whitelisted issues
	MisspellingsOnly  bool     `json:"misspellingsOnly,omitempty"`  // keep spelling issues only
	Timeout           int      `json:"timeout,omitempty"`           // seconds
}

// Server exposes a Client over HTTP.
type Server struct {
	client    *Client
	whitelist *Whitelist
	timeout   time.Duration
}

// NewServer creates a Server. wl may be nil.
func NewServer(c *Client, wl *Whitelist) *Server {
	if wl == nil {
		wl = NewWhitelist()
	}
	return &Server{client: c, whitelist: wl, timeout: DefaultRequestTimeout}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/check", s.CheckHandler)
	mux.HandleFunc("/v1/languages", s.LanguagesHandler)
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/openapi.json", OpenAPIHandler)
	mux.HandleFunc("/", DocsHandler)
	return withRequestID(mux)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// CheckHandler handles POST /v1/check requests
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req CheckRequest
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes())
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, fmt.Sprintf("Request body too large: over %d bytes", tooBig.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Invalid request: text is empty", http.StatusBadRequest)
		return
	}

	timeout := s.timeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	// server whitelist + inline words
	wl := NewWhitelist(s.whitelist.Words()...)
	for _, word := range req.Words {
		wl.Add(word)
	}

	lang := req.Language
	if lang == "" {
		lang = s.client.DefaultLanguage()
	}

	errs, err := s.client.Check(ctx, req.Text, lang, wl.Words())
	if err != nil {
		http.Error(w, fmt.Sprintf("Check failed: %v", err), statusOf(err))
		return
	}

	rv, err := NewReview(req.Text, errs, wl, ReviewOptions{
		IgnoreWhitelisted: req.IgnoreWhitelisted,
		MisspellingsOnly:  req.MisspellingsOnly,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Check failed: %v", err), statusOf(err))
		return
	}

	writeJSON(w, NewReport(req.Text, lang, rv.Errors()))
}

// LanguagesHandler handles GET /v1/languages requests
func (s *Server) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.client.Languages(r.Context()))
}

// maxBodyBytes bounds a /v1/check body. A JSON-escaped character takes at
// most 12 bytes; the rest covers the other fields.
func (s *Server) maxBodyBytes() int64 {
	if n := s.client.MaxChars(); n > 0 {
		return int64(n)*12 + 64<<10
	}
	return maxBody
}

func statusOf(err error) int {
	var (
		qe *QuotaExceededError
		se *ServiceError
		me *MalformedResponseError
	)
	switch {
	case errors.As(err, &qe):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &se), errors.As(err, &me), errors.Is(err, ErrNoRule):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := util.WriteJSON(w, v, true); err != nil {
		log.Printf("ltcheck: write response: %v", err)
	}
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "ltcheck",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "ltcheck API",
    "description": "Grammar and spell checking backed by a LanguageTool-compatible service",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/check": {
      "post": {
        "summary": "Check text",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CheckRequest" },
              "examples": {
                "basic": { "value": { "text": "Hello wrld today", "language": "en-US" } },
                "whitelist": { "value": { "text": "Hello wrld today", "words": ["wrld"], "ignoreWhitelisted": true } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Check result",
            "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Report" } } }
          },
          "400": { "description": "Invalid request" },
          "413": { "description": "Text longer than the per-request limit" },
          "502": { "description": "Checking service failed or answered with a malformed body" },
          "504": { "description": "Checking service timed out" }
        }
      }
    },
    "/v1/languages": {
      "get": {
        "summary": "Supported languages",
        "description": "Falls back to a single default entry when the service cannot be reached.",
        "responses": {
          "200": {
            "description": "Languages",
            "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Language" } } } }
          }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": { "200": { "description": "Service up" } }
      }
    }
  },
  "components": {
    "schemas": {
      "CheckRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":              { "type": "string" },
          "language":          { "type": "string", "example": "en-US" },
          "words":             { "type": "array", "items": { "type": "string" } },
          "ignoreWhitelisted": { "type": "boolean" },
          "misspellingsOnly":  { "type": "boolean" },
          "timeout":           { "type": "integer", "description": "seconds, default 30" }
        }
      },
      "Language": {
        "type": "object",
        "properties": {
          "name":     { "type": "string" },
          "code":     { "type": "string" },
          "longCode": { "type": "string" }
        }
      },
      "Report": {
        "type": "object",
        "properties": {
          "original":         { "type": "string" },
          "corrected":        { "type": "string", "description": "first suggestion applied to every non-whitelisted issue" },
          "editDistance":     { "type": "integer" },
          "charCount":        { "type": "integer" },
          "language":         { "type": "string" },
          "errorCount":       { "type": "integer" },
          "whitelistedCount": { "type": "integer" },
          "issues":           { "type": "array", "items": { "$ref": "#/components/schemas/Issue" } }
        }
      },
      "Issue": {
        "type": "object",
        "properties": {
          "message":      { "type": "string" },
          "shortMessage": { "type": "string" },
          "word":         { "type": "string" },
          "offset":       { "type": "integer", "description": "UTF-16 offset into original" },
          "end":          { "type": "integer" },
          "length":       { "type": "integer" },
          "context":      { "type": "string" },
          "suggestions":  { "type": "array", "items": { "type": "string" } },
          "distances":    { "type": "array", "items": { "type": "integer" } },
          "whitelisted":  { "type": "boolean" },
          "rule":         { "type": "object" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>ltcheck API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
