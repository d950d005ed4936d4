package endpoint

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

type recordSink struct {
	lines []string
}

func (r *recordSink) Printf(format string, v ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func TestPublishOnce(t *testing.T) {
	var b Binding
	first := Endpoint{Source: SourceOverride, Value: "http://localhost:8080"}
	second := Endpoint{Source: SourceDefault, Value: DefaultAPIURL}

	got, stored := b.Publish(first)
	if !stored || got != first {
		t.Fatalf("first Publish = %+v, %v", got, stored)
	}

	got, stored = b.Publish(second)
	if stored {
		t.Fatal("second Publish must not store")
	}
	if got != first {
		t.Errorf("second Publish returned %+v, want %+v", got, first)
	}

	loaded, ok := b.Load()
	if !ok || loaded != first {
		t.Errorf("Load = %+v, %v", loaded, ok)
	}
}

func TestLoadEmpty(t *testing.T) {
	var b Binding
	if _, ok := b.Load(); ok {
		t.Error("empty binding reported a value")
	}
}

func TestPublishPresetKept(t *testing.T) {
	var b Binding
	b.Publish(Endpoint{Source: SourcePreset, Value: "http://preset"})

	sink := &recordSink{}
	computed := Resolve(mustParse(t, "https://example.com/?api_url=http://localhost:8080"))
	got, stored := Publish(&b, computed, sink)

	if stored {
		t.Error("preset binding was overwritten")
	}
	if got.Value != "http://preset" {
		t.Errorf("bound value = %q, want http://preset", got.Value)
	}
	if len(sink.lines) != 1 {
		t.Fatalf("expected one diagnostic line, got %d", len(sink.lines))
	}
	if !strings.Contains(sink.lines[0], "http://preset") {
		t.Errorf("diagnostic line %q lacks the bound value", sink.lines[0])
	}
}

func TestPublishDiagnosticLine(t *testing.T) {
	var b Binding
	sink := &recordSink{}
	Publish(&b, Endpoint{Source: SourceOverride, Value: "http://localhost:8080"}, sink)

	want := "BULL_API_URL: http://localhost:8080 (override)"
	if len(sink.lines) != 1 || sink.lines[0] != want {
		t.Errorf("lines = %q, want [%q]", sink.lines, want)
	}
}

func TestPublishNilSink(t *testing.T) {
	var b Binding
	got, stored := Publish(&b, Endpoint{Value: "http://x"}, nil)
	if !stored || got.Value != "http://x" {
		t.Errorf("got %+v, %v", got, stored)
	}
}

func TestPublishConcurrent(t *testing.T) {
	var b Binding
	var wg sync.WaitGroup
	results := make([]Endpoint, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = b.Publish(Endpoint{Source: SourceOverride, Value: fmt.Sprintf("http://host-%d", i)})
		}(i)
	}
	wg.Wait()

	bound, _ := b.Load()
	for i, r := range results {
		if r != bound {
			t.Errorf("goroutine %d saw %q, binding holds %q", i, r.Value, bound.Value)
		}
	}
}

func TestNewConfig(t *testing.T) {
	var b Binding
	sink := &recordSink{}

	cfg := NewConfig(Resolver{}, &b, mustParse(t, "https://example.com/"), sink)
	if cfg.BaseURL() != DefaultAPIURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL())
	}

	// A second initialization observes the first
	again := NewConfig(Resolver{}, &b, mustParse(t, "https://example.com/?api_url=http://other"), sink)
	if again != cfg {
		t.Errorf("second NewConfig = %+v, want %+v", again, cfg)
	}
	if len(sink.lines) != 2 {
		t.Errorf("expected a diagnostic line per initialization, got %d", len(sink.lines))
	}
}
