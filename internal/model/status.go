package model

import "strings"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// NormalizeStatus maps "completed"/"done" to completed and everything else,
// including the legacy "in-progress", to pending.
func NormalizeStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed", "done":
		return StatusCompleted
	default:
		return StatusPending
	}
}
