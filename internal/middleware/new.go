package middleware

import "course-compass/pkg/log"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
