package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies wlctl requests in whitelistd access logs.
const UserAgent = "wlctl"

// HTTPClient embeds *resty.Client and carries the defaults every wlctl
// request shares.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends UserAgent and never
// follows redirects, so a misconfigured address fails instead of silently
// posting credentials elsewhere.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	return &HTTPClient{Client: client}
}
