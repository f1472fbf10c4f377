package domain

import (
	"strings"
	"time"
)

// Severity classifies filter verdicts and manual flags.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// ParseSeverity maps a wire string onto a Severity, case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return "", false
	}
}

// Flag is a manual report against an update. Flags are resolved, never deleted.
type Flag struct {
	ID         int64     `json:"id"`
	UpdateID   int64     `json:"updateId"`
	FlaggedBy  string    `json:"flaggedBy"`
	Reason     string    `json:"reason"`
	Severity   Severity  `json:"severity"`
	CreatedAt  time.Time `json:"createdAt"`
	IsResolved bool      `json:"isResolved"`
}

// Warning is a per-user record of a moderation event affecting their standing.
// ExpiresAt is recorded for automatic warnings but not consulted by any read
// path; warning counts stay effective regardless of age.
type Warning struct {
	ID        int64      `json:"id"`
	Identity  string     `json:"identity"`
	Reason    string     `json:"reason"`
	Severity  Severity   `json:"severity"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
