package model

import "time"

// AuditEntry is an append-only record of an administrative action.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	UserID    int64     `json:"user_id"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditRow joins actor display fields for the admin listing.
type AuditRow struct {
	AuditEntry
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
