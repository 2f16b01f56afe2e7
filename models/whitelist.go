package models

// ExportFormat selects the serialisation used by whitelist export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// NameChange reports the outcome of adding or removing a single name.
//
// Changed mirrors the boolean result of the local store operation. The
// Remote* fields describe the best-effort propagation to the game server,
// which is only attempted when the local set actually changed.
type NameChange struct {
	Name    string `json:"name"`
	Changed bool   `json:"changed"`

	RemoteAttempted bool   `json:"remote_attempted"`
	RemoteResponse  string `json:"remote_response,omitempty"`
	RemoteError     string `json:"remote_error,omitempty"`
}

// Export is a rendered copy of the local whitelist ready to be sent as a
// file.
type Export struct {
	Format      ExportFormat `json:"format"`
	FileName    string       `json:"file_name"`
	ContentType string       `json:"content_type"`
	Content     []byte       `json:"-"`
}

// NamesResponse is the body returned by list endpoints.
type NamesResponse struct {
	Names  []string `json:"names"`
	Length int      `json:"length"`
}

// NameRequest is the body accepted by POST /api/whitelist.
type NameRequest struct {
	Name string `json:"name"`
}
