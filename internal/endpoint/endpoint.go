// Package endpoint resolves the base URL of the Bull API for the web app.
//
// The page address may carry an api_url query parameter pointing at another
// API instance, usually a local one during manual testing. Without it the
// production URL is used. The resolved value is published once and handed to
// consumers through Config instead of living in a shared global.
package endpoint

import (
	"net/url"
	"strings"
)

const (
	// DefaultAPIURL is the production Bull API.
	DefaultAPIURL = "https://marxist-noell-uslima2005-12a246c3.koyeb.app"

	// QueryKey is the page query parameter that overrides the default.
	QueryKey = "api_url"

	// GlobalName is the page-global binding the web app reads.
	GlobalName = "BULL_API_URL"
)

type Source int

const (
	SourceDefault  Source = iota
	SourceOverride        // api_url query parameter
	SourcePreset          // already bound before resolution ran
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceOverride:
		return "override"
	case SourcePreset:
		return "preset"
	default:
		return "unknown"
	}
}

// Endpoint is a resolved API base URL and where it came from
type Endpoint struct {
	Source Source
	Value  string
}

func (e Endpoint) String() string {
	return e.Value
}

// Resolver picks the endpoint for a page. The zero value falls back to DefaultAPIURL.
type Resolver struct {
	Default string
}

// Resolve inspects the query of the page address. A non-empty api_url is
// returned verbatim; an absent or empty one yields the default. A nil page
// has no query.
func (r Resolver) Resolve(page *url.URL) Endpoint {
	if page == nil {
		return r.fallback()
	}
	return r.ResolveQuery(page.RawQuery)
}

// ResolveQuery applies the same rule to a raw query string without the leading '?'.
// The override itself is never validated.
func (r Resolver) ResolveQuery(rawQuery string) Endpoint {
	if v, ok := lookupQuery(rawQuery, QueryKey); ok && v != "" {
		return Endpoint{Source: SourceOverride, Value: v}
	}
	return r.fallback()
}

// lookupQuery returns the first value of key the way URLSearchParams.get
// does: pairs split on '&' only, '+' is a space, and percent escapes that
// don't decode are kept as written. ';' is an ordinary character.
func lookupQuery(rawQuery, key string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if formDecode(name) == key {
			return formDecode(value), true
		}
	}
	return "", false
}

func formDecode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func (r Resolver) fallback() Endpoint {
	if r.Default == "" {
		return Endpoint{Source: SourceDefault, Value: DefaultAPIURL}
	}
	return Endpoint{Source: SourceDefault, Value: r.Default}
}

// Resolve resolves against DefaultAPIURL
func Resolve(page *url.URL) Endpoint {
	return Resolver{}.Resolve(page)
}

// ResolveQuery resolves a raw query string against DefaultAPIURL
func ResolveQuery(rawQuery string) Endpoint {
	return Resolver{}.ResolveQuery(rawQuery)
}
