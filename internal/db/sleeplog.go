package db

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sleepapi/internal/logger"
)

// totalTimeInBed computes the seconds spent in bed for one night. A wake
// time earlier in the day than the bed time means sleep crossed midnight,
// so the wake instant falls on the next calendar day. Equal times yield
// zero seconds, not 24 hours.
func totalTimeInBed(bedTime, wakeTime datatypes.Time) int {
	bed := time.Duration(bedTime)
	wake := time.Duration(wakeTime)
	if wake < bed {
		wake += 24 * time.Hour
	}
	return int((wake - bed) / time.Second)
}

// CreateSleepLog inserts a new sleep log for the given user and entry date
// inside a single transaction, deriving TotalTimeInBed from the two clock
// times. Uniqueness of (user, entry date) is left to the database
// constraint; a violation comes back as ErrDuplicateSleepLog and any other
// storage fault as ErrStorage with the cause logged, never returned.
func CreateSleepLog(db *gorm.DB, userID uint, entryDate datatypes.Date, bedTime, wakeTime datatypes.Time, feeling MorningFeeling) (*SleepLog, error) {
	entry := &SleepLog{
		UserID:         userID,
		EntryDate:      entryDate,
		BedTime:        bedTime,
		WakeTime:       wakeTime,
		TotalTimeInBed: totalTimeInBed(bedTime, wakeTime),
		MorningFeeling: feeling.String(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			logger.Get().Debugw("duplicate sleep log creation attempt",
				"userId", userID, "entryDate", formatEntryDate(entryDate))
			return nil, ErrDuplicateSleepLog
		}
		logger.Get().Debugw("sleep log insert failed",
			"userId", userID, "entryDate", formatEntryDate(entryDate), "error", err)
		return nil, ErrStorage
	}

	return entry, nil
}

// GetSleepLog returns the single log for the given user and entry date,
// or ErrNotFound. Absence is a normal outcome and is not logged.
func GetSleepLog(db *gorm.DB, userID uint, entryDate datatypes.Date) (*SleepLog, error) {
	var entry SleepLog
	err := db.Where("user_id = ? AND entry_date = ?", userID, entryDate).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		logger.Get().Debugw("sleep log lookup failed",
			"userId", userID, "entryDate", formatEntryDate(entryDate), "error", err)
		return nil, ErrStorage
	}
	return &entry, nil
}

// GetSleepLogs returns all logs for the user whose entry date falls in the
// inclusive [startDate, endDate] window, ordered ascending by entry date.
// The result is fully materialized; an empty window is an empty slice.
func GetSleepLogs(db *gorm.DB, userID uint, startDate, endDate datatypes.Date) ([]SleepLog, error) {
	var entries []SleepLog
	err := db.Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		logger.Get().Debugw("sleep log range query failed",
			"userId", userID,
			"startDate", formatEntryDate(startDate),
			"endDate", formatEntryDate(endDate),
			"error", err)
		return nil, ErrStorage
	}
	return entries, nil
}

func formatEntryDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
