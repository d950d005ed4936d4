package core

// Response types

// ConfigResponse is what the web server reports for GET /config
type ConfigResponse struct {
	APIURL string `json:"apiUrl"`
	Source string `json:"source"` // "override" or "default"
}

// HealthResponse matches the Bull API health check
type HealthResponse struct {
	OK bool `json:"ok"`
}

// PackagesResponse is the Bull API package search result for a date
type PackagesResponse struct {
	OK    bool             `json:"ok"`
	Found bool             `json:"found"`
	Data  []map[string]any `json:"data"`
	Error string           `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Detail  any    `json:"detail,omitempty"` // FastAPI validation errors
}
