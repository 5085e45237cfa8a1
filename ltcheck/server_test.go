package ltcheck

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/Alfex4936/ltcheck/internal/model"
)

func serve(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCheckHandler(t *testing.T) {
	c, d := newTestClient(t, map[string]fakeResp{"/v2/check": {status: 200, body: exampleBody}}, 100)
	srv := NewServer(c, NewWhitelist("golang"))

	rec := serve(t, srv, http.MethodPost, "/v1/check", `{"text":"Hello wrld today","words":["WRLD"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}

	var rep model.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Language != "it" || rep.ErrorCount != 1 || rep.WhitelistedCount != 1 {
		t.Errorf("report = %+v", rep)
	}
	if !rep.Issues[0].Whitelisted || rep.Issues[0].Word != "wrld" {
		t.Errorf("issue = %+v", rep.Issues[0])
	}
	if got := d.forms[0].Get("language"); got != "it" {
		t.Errorf("language sent = %q", got)
	}
}

func TestCheckHandler_IgnoreWhitelisted(t *testing.T) {
	c, _ := newTestClient(t, map[string]fakeResp{"/v2/check": {status: 200, body: exampleBody}}, 0)
	srv := NewServer(c, NewWhitelist("wrld"))

	rec := serve(t, srv, http.MethodPost, "/v1/check", `{"text":"Hello wrld today","language":"en-US","ignoreWhitelisted":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var rep model.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.ErrorCount != 0 || rep.Issues != nil || rep.Corrected != "Hello wrld today" {
		t.Errorf("report = %+v", rep)
	}
}

func TestCheckHandler_BodyTooLarge(t *testing.T) {
	c, d := newTestClient(t, map[string]fakeResp{"/v2/check": {status: 200, body: exampleBody}}, 10)
	srv := NewServer(c, nil)

	body := `{"text":"x","words":["` + strings.Repeat("a", int(srv.maxBodyBytes())) + `"]}`
	rec := serve(t, srv, http.MethodPost, "/v1/check", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "body too large") {
		t.Errorf("body = %q", rec.Body)
	}
	if len(d.reqs) != 0 {
		t.Error("oversized request reached the service")
	}
}

func TestCheckHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		body   string
		resp   fakeResp
		want   int
	}{
		{"wrong method", http.MethodGet, "", fakeResp{status: 200, body: "{}"}, http.StatusMethodNotAllowed},
		{"bad json", http.MethodPost, "{", fakeResp{status: 200, body: "{}"}, http.StatusBadRequest},
		{"empty text", http.MethodPost, `{"text":"  "}`, fakeResp{status: 200, body: "{}"}, http.StatusBadRequest},
		{"too long", http.MethodPost, `{"text":"` + strings.Repeat("a", 11) + `"}`, fakeResp{status: 200, body: "{}"}, http.StatusRequestEntityTooLarge},
		{"service down", http.MethodPost, `{"text":"x"}`, fakeResp{status: 500, body: "boom"}, http.StatusBadGateway},
		{"malformed", http.MethodPost, `{"text":"x"}`, fakeResp{status: 200, body: "nope"}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, map[string]fakeResp{"/v2/check": tc.resp}, 10)
			rec := serve(t, NewServer(c, nil), tc.method, "/v1/check", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tc.want, rec.Body)
			}
		})
	}
}

func TestLanguagesHandler(t *testing.T) {
	c, _ := newTestClient(t, map[string]fakeResp{"/v2/languages": {status: 502, body: "bad gateway"}}, 0)
	rec := serve(t, NewServer(c, nil), http.MethodGet, "/v1/languages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []Language
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(got, []Language{{Name: "it", Code: "it", LongCode: "it"}}); diff != nil {
		t.Error(diff)
	}
}

func TestStaticHandlers(t *testing.T) {
	c, _ := newTestClient(t, nil, 0)
	srv := NewServer(c, nil)

	if rec := serve(t, srv, http.MethodGet, "/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("/health = %d %s", rec.Code, rec.Body)
	}
	rec := serve(t, srv, http.MethodGet, "/openapi.json", "")
	if !json.Valid(rec.Body.Bytes()) {
		t.Error("/openapi.json is not valid JSON")
	}
	if rec := serve(t, srv, http.MethodGet, "/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("/missing = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	out := httptest.NewRecorder()
	srv.Handler().ServeHTTP(out, req)
	if out.Header().Get("X-Request-ID") != "abc" {
		t.Error("incoming request id not echoed")
	}
}
