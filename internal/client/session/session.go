// Package session holds the state of an interactive debug client session.
package session

import (
	"bull/internal/client/api"
	"bull/internal/endpoint"
)

type Session struct {
	Config   endpoint.Config
	Client   *api.Client
	Verbose  bool
	Override *endpoint.Endpoint // set by the url command, never by resolution
}

// New starts a session against the endpoint in cfg
func New(cfg endpoint.Config) *Session {
	return &Session{
		Config: cfg,
		Client: api.New(cfg.API),
	}
}

// Endpoint returns the endpoint the client currently talks to
func (s *Session) Endpoint() endpoint.Endpoint {
	if s.Override != nil {
		return *s.Override
	}
	return s.Config.API
}

// SetEndpoint points the client at another API for the rest of the session.
// The startup Config is left as resolved.
func (s *Session) SetEndpoint(e endpoint.Endpoint) {
	s.Override = &e
	s.Client.SetBaseURL(e.Value)
}

func (s *Session) GetClient() *api.Client {
	return s.Client
}

func (s *Session) IsVerbose() bool {
	return s.Verbose
}
