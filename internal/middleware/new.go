package middleware

import (
	"scheduling-intelligence/pkg/log"
)

// Middleware holds the dependencies shared by gin middlewares.
type Middleware struct {
	l           log.Logger
	ownerHeader string
}

// New creates a Middleware. ownerHeader defaults to X-Owner-ID.
func New(l log.Logger, ownerHeader string) Middleware {
	if ownerHeader == "" {
		ownerHeader = DefaultOwnerHeader
	}
	return Middleware{
		l:           l,
		ownerHeader: ownerHeader,
	}
}
