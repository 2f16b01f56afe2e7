// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or carries no token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoActorInContext is returned by handlers that need the operator name
	// when the auth middleware did not store one.
	ErrNoActorInContext = errors.New("no actor in request context")
)

// Request decoding errors.
var (
	errInvalidJSON       = errors.New("invalid JSON was passed")
	errInvalidQueryParam = errors.New("invalid query parameter")
	errBodyTooLarge      = errors.New("request body too large")
	errInvalidGzip       = errors.New("invalid gzip data")
)
