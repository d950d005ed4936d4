package core

// Error codes
const (
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalError  = "INTERNAL_ERROR"
)
