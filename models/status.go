package models

import "time"

// Status is a point-in-time summary of the whitelist keeper.
type Status struct {
	RemoteEnabled   bool `json:"remote_enabled"`
	ScheduleEnabled bool `json:"schedule_enabled"`

	// NextScheduledRun is nil when scheduled runs are disabled.
	NextScheduledRun *time.Time `json:"next_scheduled_run"`

	LocalCount int `json:"local_count"`

	// RemoteCount is nil when the remote whitelist size is unknown, either
	// because the integration is disabled or the listing call failed.
	RemoteCount *int `json:"remote_count"`

	// LastRun is the most recent reconciliation run of this process.
	LastRun *ReconciliationResult `json:"last_run,omitempty"`
}
