package tz

import (
	"log"
	"time"
)

// Load returns the named location, or UTC when name is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: fuseau %q inconnu, UTC utilisé: %v", name, err)
		return time.UTC
	}
	return loc
}

// Clock returns a function giving the current time in loc.
func Clock(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}
