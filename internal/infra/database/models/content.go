package models

import (
	"time"
)

type Update struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Author           string    `json:"author" gorm:"type:text;index"`
	Content          string    `json:"content" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt" gorm:"type:timestamp with time zone;not null;index"`
	Likes            int64     `json:"likes" gorm:"not null;default:0"`
	Reposts          int64     `json:"reposts" gorm:"not null;default:0"`
	Quotes           int64     `json:"quotes" gorm:"not null;default:0"`
	OriginalPostID   *int64    `json:"originalPostId" gorm:"index"`
	QuoteContent     *string   `json:"quoteContent" gorm:"type:text"`
	IsModerated      bool      `json:"isModerated" gorm:"type:boolean;not null;default:false;index"`
	ModerationReason *string   `json:"moderationReason" gorm:"type:text"`
	IsHidden         bool      `json:"isHidden" gorm:"type:boolean;not null;default:false"`
}

type LikeMember struct {
	UpdateID int64     `json:"updateId" gorm:"primaryKey;autoIncrement:false"`
	Identity string    `json:"identity" gorm:"primaryKey;type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// RepostMember mirrors LikeMember. The reposted lookup reads it, but no
// write path populates it yet.
type RepostMember struct {
	UpdateID int64     `json:"updateId" gorm:"primaryKey;autoIncrement:false"`
	Identity string    `json:"identity" gorm:"primaryKey;type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Counter is a named monotonic id source. Rows: "update", "flag", "warning".
type Counter struct {
	Name  string `json:"name" gorm:"primaryKey;type:text"`
	Value int64  `json:"value" gorm:"not null;default:0"`
}
