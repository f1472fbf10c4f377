package social360

import "time"

// Wire types shared by the REST handler and the client package.

type RegisterRequest struct {
	Handle string `json:"handle"`
}

type PostRequest struct {
	Content string `json:"content"`
}

type QuoteRequest struct {
	Content string `json:"content"`
}

type FollowRequest struct {
	Identity string `json:"identity"`
}

type SuspendRequest struct {
	DurationSeconds int64 `json:"durationSeconds"`
}

type FlagRequest struct {
	Reason   string `json:"reason"`
	Severity string `json:"severity"`
}

type ModerateRequest struct {
	Reason string `json:"reason"`
}

type InsightRequest struct {
	Content string `json:"content"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

type MembershipResponse struct {
	Member bool `json:"member"`
}

type ResultResponse struct {
	OK bool `json:"ok"`
}

// Account mirrors the JSON shape of an account record as served by the API.
type Account struct {
	Identity       string     `json:"identity"`
	Handle         string     `json:"handle"`
	IsVerified     bool       `json:"isVerified"`
	WarningCount   uint32     `json:"warningCount"`
	IsSuspended    bool       `json:"isSuspended"`
	SuspendedUntil *time.Time `json:"suspendedUntil,omitempty"`
}

// Update mirrors the JSON shape of a published update.
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

// ModerationFlag mirrors the JSON shape of a manual report.
type ModerationFlag struct {
	ID         int64     `json:"id"`
	UpdateID   int64     `json:"updateId"`
	FlaggedBy  string    `json:"flaggedBy"`
	Reason     string    `json:"reason"`
	Severity   string    `json:"severity"`
	CreatedAt  time.Time `json:"createdAt"`
	IsResolved bool      `json:"isResolved"`
}

// Warning mirrors the JSON shape of a per-user moderation warning.
type Warning struct {
	ID        int64      `json:"id"`
	Identity  string     `json:"identity"`
	Reason    string     `json:"reason"`
	Severity  string     `json:"severity"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Insights mirrors the JSON shape of a content analysis report.
type Insights struct {
	ContentScore    int                  `json:"contentScore"`
	Sentiment       float64              `json:"sentiment"`
	Category        string               `json:"category"`
	Prediction      EngagementPrediction `json:"engagementPrediction"`
	AudienceReach   int64                `json:"audienceReach"`
	Suggestions     []string             `json:"suggestions"`
	TrendingTopics  []string             `json:"trendingTopics"`
	BestPostingTime string               `json:"bestPostingTime"`
}

type EngagementPrediction struct {
	Likes          int64   `json:"likes"`
	Shares         int64   `json:"shares"`
	Comments       int64   `json:"comments"`
	ViralPotential float64 `json:"viralPotential"`
}

// WellKnownSocial360 is the service descriptor served at /.well-known/social360.
type WellKnownSocial360 struct {
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
