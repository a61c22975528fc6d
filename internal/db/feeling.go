package db

import "fmt"

// MorningFeeling is the closed set of values a user may report for how
// they felt after the night described by a sleep log.
type MorningFeeling string

const (
	FeelingBad  MorningFeeling = "BAD"
	FeelingOK   MorningFeeling = "OK"
	FeelingGood MorningFeeling = "GOOD"
)

// ParseMorningFeeling converts raw input into a MorningFeeling, rejecting
// anything outside the closed set. Matching is exact; callers normalize
// case at the boundary if they want to be lenient.
func ParseMorningFeeling(s string) (MorningFeeling, error) {
	switch MorningFeeling(s) {
	case FeelingBad, FeelingOK, FeelingGood:
		return MorningFeeling(s), nil
	}
	return "", fmt.Errorf("invalid morning feeling %q (expected BAD, OK or GOOD)", s)
}

func (f MorningFeeling) String() string { return string(f) }
