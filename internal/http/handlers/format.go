package handlers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Wire formats for dates and clock times. All values are naive
// wall-clock; the service does no timezone handling.
const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05"
)

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func parseTimeOfDay(s string) (datatypes.Time, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, err
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func formatTimeOfDay(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d",
		d/time.Hour, (d%time.Hour)/time.Minute, (d%time.Minute)/time.Second)
}

// today returns the current calendar date with the clock component dropped.
func today() datatypes.Date {
	y, m, d := time.Now().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
