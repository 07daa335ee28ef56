// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// date boundary math (service windows, settlement days).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Seoul"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Seoul.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone when not explicitly initialized.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// AddMonths advances t by the given number of calendar months in the business
// timezone, then returns the UTC equivalent. Month-end overflow follows the
// time package's normalization rules.
func AddMonths(t time.Time, months int) time.Time {
	return t.In(Location()).AddDate(0, months, 0).UTC()
}

// VersionStamp returns a numeric yyyymmddHHMMSS stamp of t in UTC.
// Used as the floor when minting subscription batch versions.
func VersionStamp(t time.Time) int64 {
	u := t.UTC()
	return int64(u.Year())*1e10 +
		int64(u.Month())*1e8 +
		int64(u.Day())*1e6 +
		int64(u.Hour())*1e4 +
		int64(u.Minute())*1e2 +
		int64(u.Second())
}
