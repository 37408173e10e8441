package utils

import (
	"time"
	_ "time/tzdata"
)

const DateLayout = "2006-01-02"

// Ohrid time location (CET/CEST)
var ohridLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Skopje"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

// LoadLocation resolves an IANA name, falling back to Ohrid time.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return ohridLoc
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return ohridLoc
}

func NowIn(loc *time.Location) time.Time {
	if loc == nil {
		loc = ohridLoc
	}
	return time.Now().In(loc)
}

// Today returns the local calendar date as YYYY-MM-DD.
func Today(loc *time.Location) string {
	return NowIn(loc).Format(DateLayout)
}

// ParseAt accepts RFC3339 or a local "YYYY-MM-DDTHH:MM" and returns the instant in loc.
// An empty string means now.
func ParseAt(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = ohridLoc
	}
	if s == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}
