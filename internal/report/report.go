// Package report derives aggregate statistics from an ordered set of
// sleep logs. It is pure: no persistence dependency, no internal state,
// safe to call concurrently.
package report

import (
	"time"

	"gorm.io/datatypes"

	"sleepapi/internal/db"
)

// Aggregate is the derived summary over one report window. It is
// computed on demand and never persisted.
type Aggregate struct {
	StartDate datatypes.Date
	EndDate   datatypes.Date

	// AverageTotalTimeInBedSeconds is the mean of the included logs'
	// durations, truncated to whole seconds.
	AverageTotalTimeInBedSeconds int

	AverageBedTime  datatypes.Time
	AverageWakeTime datatypes.Time

	// MorningFeelingFrequencies counts logs per feeling value present in
	// the window. Feelings with no occurrences are absent, not zero.
	MorningFeelingFrequencies map[string]int
}

// Summarize computes the aggregate for the given logs and window. The
// caller chooses the window; it is reported back verbatim, never
// defaulted or clamped here. A window with no logs returns nil.
//
// Clock times are averaged linearly over second-of-day offsets. That is
// not a circular mean: values clustering on both sides of midnight skew
// toward midday (23:50 and 00:10 average to noon). The distortion is
// kept deliberately, since downstream consumers depend on the exact
// output values for typical evening bed times.
func Summarize(logs []db.SleepLog, startDate, endDate datatypes.Date) *Aggregate {
	if len(logs) == 0 {
		return nil
	}

	var durationSum, bedSum, wakeSum int
	frequencies := make(map[string]int)

	for _, entry := range logs {
		durationSum += entry.TotalTimeInBed
		bedSum += secondOfDay(entry.BedTime)
		wakeSum += secondOfDay(entry.WakeTime)
		frequencies[entry.MorningFeeling]++
	}

	n := len(logs)
	return &Aggregate{
		StartDate:                    startDate,
		EndDate:                      endDate,
		AverageTotalTimeInBedSeconds: durationSum / n,
		AverageBedTime:               timeOfDay(bedSum / n),
		AverageWakeTime:              timeOfDay(wakeSum / n),
		MorningFeelingFrequencies:    frequencies,
	}
}

func secondOfDay(t datatypes.Time) int {
	return int(time.Duration(t) / time.Second)
}

func timeOfDay(seconds int) datatypes.Time {
	return datatypes.Time(time.Duration(seconds) * time.Second)
}
