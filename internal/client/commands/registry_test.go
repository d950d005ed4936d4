package commands

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"bull/internal/client/display"
	"bull/internal/client/session"
	"bull/internal/endpoint"
)

func init() {
	display.Disable()
}

func newSession(t *testing.T, page string) *session.Session {
	t.Helper()
	var b endpoint.Binding
	ep := endpoint.ResolveQuery(page)
	bound, _ := b.Publish(ep)
	return session.New(endpoint.Config{API: bound})
}

func TestShortNames(t *testing.T) {
	r := NewRegistry(newSession(t, ""))

	for short, name := range map[string]string{
		".": "health",
		"p": "packages",
		"/": "url",
		":": "raw",
		"-": "clear",
		"?": "help",
		"x": "exit",
	} {
		cmd, ok := r.Lookup(short)
		if !ok {
			t.Errorf("short name %q not registered", short)
			continue
		}
		if cmd.Name != name {
			t.Errorf("%q maps to %q, want %q", short, cmd.Name, name)
		}
	}
}

func TestExecuteUnknown(t *testing.T) {
	r := NewRegistry(newSession(t, ""))
	if r.Execute("frobnicate") {
		t.Error("unknown command reported as executed")
	}
	if r.Execute("   ") {
		t.Error("blank input reported as executed")
	}
}

func TestURLCommand(t *testing.T) {
	s := newSession(t, "api_url=http://localhost:8080")
	r := NewRegistry(s)

	if got := s.Endpoint(); got.Value != "http://localhost:8080" || got.Source != endpoint.SourceOverride {
		t.Fatalf("startup endpoint = %+v", got)
	}

	// No argument only shows the endpoint
	r.Execute("url")
	if s.Endpoint().Value != "http://localhost:8080" {
		t.Error("url without argument changed the endpoint")
	}

	r.Execute("/ 127.0.0.1:9000")
	if got := s.Endpoint().Value; got != "127.0.0.1:9000" {
		t.Errorf("endpoint = %q, want value as typed", got)
	}
	if s.Config.API.Value != "http://localhost:8080" {
		t.Errorf("startup config changed to %q", s.Config.API.Value)
	}
	if s.Client.BaseURL != "127.0.0.1:9000" {
		t.Errorf("client base = %q", s.Client.BaseURL)
	}
}

func TestHealthCommand(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	s := newSession(t, "api_url="+srv.URL)
	r := NewRegistry(s)

	if !r.Execute("health") {
		t.Fatal("health not executed")
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestPackagesCommandRequiresDate(t *testing.T) {
	s := newSession(t, "")
	if err := packagesHandler(s, nil); err == nil {
		t.Error("expected usage error")
	}
}

func TestRawCommandRequiresArgs(t *testing.T) {
	s := newSession(t, "")
	if err := rawRequestHandler(s, []string{"GET"}); err == nil {
		t.Error("expected usage error")
	}
}

func TestHelp(t *testing.T) {
	r := NewRegistry(newSession(t, ""))
	if err := r.helpHandler(nil, nil); err != nil {
		t.Errorf("help: %v", err)
	}
	if err := r.helpHandler(nil, []string{"url"}); err != nil {
		t.Errorf("help url: %v", err)
	}
	if err := r.helpHandler(nil, []string{"nope"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestVerboseFlowsToClient(t *testing.T) {
	s := newSession(t, "")
	s.Verbose = true
	r := NewRegistry(s)
	r.Execute("url")
	if !s.Client.Verbose {
		t.Error("client not switched to verbose")
	}
}
