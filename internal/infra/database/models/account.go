package models

import (
	"time"
)

type Account struct {
	Identity       string     `json:"identity" gorm:"primaryKey;type:text"`
	Handle         string     `json:"handle" gorm:"type:text;index"`
	IsVerified     bool       `json:"isVerified" gorm:"type:boolean;not null;default:false"`
	WarningCount   uint32     `json:"warningCount" gorm:"not null;default:0"`
	IsSuspended    bool       `json:"isSuspended" gorm:"type:boolean;not null;default:false"`
	SuspendedUntil *time.Time `json:"suspendedUntil" gorm:"type:timestamp with time zone"`
	CDate          time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type FollowEdge struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Follower string    `json:"follower" gorm:"type:text;index;uniqueIndex:uniq_follow_edge"`
	Followee string    `json:"followee" gorm:"type:text;index;uniqueIndex:uniq_follow_edge"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
