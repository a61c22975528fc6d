package db

import (
	"time"

	"gorm.io/datatypes"
)

// User represents an account that owns sleep logs. Users are plain
// identity records; the service carries no credentials for them.
type User struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username string `gorm:"uniqueIndex;size:255;not null"`
}

// SleepLog is one night's observation for a user, keyed by the calendar
// date the observation is about (not the storage timestamp). At most one
// log may exist per (user, entry date); the composite unique index is
// the source of truth for that rule.
type SleepLog struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex:idx_sleep_logs_user_entry_date,priority:1;not null"`

	// EntryDate is the date the log contains data for. A log recorded on
	// the morning of the 12th about the night of the 11th carries the 11th.
	EntryDate datatypes.Date `gorm:"uniqueIndex:idx_sleep_logs_user_entry_date,priority:2;not null"`

	BedTime  datatypes.Time `gorm:"not null"`
	WakeTime datatypes.Time `gorm:"not null"`

	// TotalTimeInBed is the derived span between bed time and wake time,
	// in seconds. Computed once at creation and never recomputed on read.
	TotalTimeInBed int `gorm:"not null"`

	// MorningFeeling is one of the MorningFeeling enum values, stored as text.
	MorningFeeling string `gorm:"size:4;not null"`

	// User is the owner of this log.
	User User `gorm:"foreignKey:UserID"`
}
