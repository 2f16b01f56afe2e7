package models

// ErrorResponse is the JSON body written for every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`

	// RetryAfterSeconds is set for cooldown rejections only.
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}

// RemoteListResponse is the body of GET /api/whitelist/remote.
type RemoteListResponse struct {
	Names  []string `json:"names"`
	Length int      `json:"length"`
}

// AuditResponse is the body of GET /api/audit.
type AuditResponse struct {
	Entries []AuditEntry `json:"entries"`
	Length  int          `json:"length"`
}
