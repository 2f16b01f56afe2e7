package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
)

// optionalBool parses a boolean query parameter. A missing or empty value
// yields nil so the service can apply its configured default.
func optionalBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQueryParam, key, raw)
	}
	return &v, nil
}

// boolOrDefault is optionalBool with a fallback value.
func boolOrDefault(r *http.Request, key string, def bool) (bool, error) {
	v, err := optionalBool(r, key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

// nonNegativeInt parses an integer query parameter; missing means zero.
func nonNegativeInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidQueryParam, key, raw)
	}
	return v, nil
}

func actorFromRequest(r *http.Request) (string, error) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		return "", ErrNoActorInContext
	}
	return actor, nil
}
