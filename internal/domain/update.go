package domain

import "time"

// Update is a published record: an original post, a repost, or a quote.
// Updates are append-only; moderation only toggles the moderation fields.
type Update struct {
	ID               int64     `json:"id"`
	Author           string    `json:"author"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
	Likes            int64     `json:"likes"`
	Reposts          int64     `json:"reposts"`
	Quotes           int64     `json:"quotes"`
	OriginalPostID   *int64    `json:"originalPostId,omitempty"`
	QuoteContent     *string   `json:"quoteContent,omitempty"`
	IsModerated      bool      `json:"isModerated"`
	ModerationReason *string   `json:"moderationReason,omitempty"`
	IsHidden         bool      `json:"isHidden"`
}

// DerivedKind distinguishes which counter on the original an update bumps.
type DerivedKind int

const (
	DerivedRepost DerivedKind = iota
	DerivedQuote
)
