package models

// ImportResult summarises one bulk import.
type ImportResult struct {
	// Parsed is the number of valid, de-duplicated names found in the input.
	Parsed int `json:"parsed"`

	// Added and AlreadyPresent tally the local store outcome per parsed name.
	Added          int `json:"added"`
	AlreadyPresent int `json:"already_present"`

	// ApplyRemote echoes whether remote propagation was requested.
	ApplyRemote bool `json:"apply_remote"`

	// RemoteApplied counts successful remote adds; RemoteSkipped counts names
	// that failed remotely or were not attempted because the remote
	// integration is disabled.
	RemoteApplied  int      `json:"remote_applied"`
	RemoteSkipped  int      `json:"remote_skipped"`
	RemoteFailures []string `json:"remote_failures,omitempty"`

	BackupPath string `json:"backup_path,omitempty"`
}
