package domain

import "time"

// Account is the user record keyed by the opaque caller identity.
// Accounts are created by register (last write wins) and never deleted.
type Account struct {
	Identity       string     `json:"identity"`
	Handle         string     `json:"handle"`
	IsVerified     bool       `json:"isVerified"`
	WarningCount   uint32     `json:"warningCount"`
	IsSuspended    bool       `json:"isSuspended"`
	SuspendedUntil *time.Time `json:"suspendedUntil,omitempty"`
}

// CanPost reports whether the suspension state currently blocks posting.
// A suspension without a deadline is indefinite. An expired deadline stops
// blocking but is never cleared from the record (lazy expiry).
func (a Account) CanPost(now time.Time) bool {
	if !a.IsSuspended {
		return true
	}
	if a.SuspendedUntil == nil {
		return false
	}
	return !now.Before(*a.SuspendedUntil)
}
