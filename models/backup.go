package models

import "time"

// BackupSnapshot describes one whitelist snapshot file.
type BackupSnapshot struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}
