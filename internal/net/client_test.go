package net

import (
	"context"
	"io"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

func TestEndpoint(t *testing.T) {
	cases := []struct{ base, path, want string }{
		{"https://api.languagetool.org/v2", "check", "https://api.languagetool.org/v2/check"},
		{"https://api.languagetool.org/v2/", "/languages", "https://api.languagetool.org/v2/languages"},
		{"http://localhost:8081/v2//", "check", "http://localhost:8081/v2/check"},
	}
	for _, tc := range cases {
		if got := Endpoint(tc.base, tc.path); got != tc.want {
			t.Errorf("Endpoint(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}

func TestNewPOST(t *testing.T) {
	req, err := NewPOST(context.Background(), "http://localhost/v2/check", strings.NewReader("text=a"), "")
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want default", got)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != "text=a" {
		t.Errorf("body = %q", body)
	}
}

func TestNewGET_CustomAgent(t *testing.T) {
	req, err := NewGET(context.Background(), "http://localhost/v2/languages", "ltcheck-test")
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != http.MethodGet || req.Header.Get("User-Agent") != "ltcheck-test" {
		t.Errorf("unexpected request: %s %q", req.Method, req.Header.Get("User-Agent"))
	}
}
