package models

import (
	"time"
)

type ModerationFlag struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UpdateID   int64     `json:"updateId" gorm:"not null;index"`
	FlaggedBy  string    `json:"flaggedBy" gorm:"type:text"`
	Reason     string    `json:"reason" gorm:"type:text"`
	Severity   string    `json:"severity" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" gorm:"type:timestamp with time zone;not null"`
	IsResolved bool      `json:"isResolved" gorm:"type:boolean;not null;default:false;index"`
}

type Warning struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Identity  string     `json:"identity" gorm:"type:text;index"`
	Reason    string     `json:"reason" gorm:"type:text"`
	Severity  string     `json:"severity" gorm:"type:text"`
	CreatedAt time.Time  `json:"createdAt" gorm:"type:timestamp with time zone;not null"`
	ExpiresAt *time.Time `json:"expiresAt" gorm:"type:timestamp with time zone"`
}
