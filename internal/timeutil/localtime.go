// Package timeutil converts between naive venue wall-clock strings and UTC instants.
// All venues share one zone, Europe/London.
package timeutil

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// VenueZone is the IANA zone every venue operates in.
const VenueZone = "Europe/London"

// LocalLayout is the naive wall-clock format used by forms and emails.
const LocalLayout = "2006-01-02T15:04"

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var venueLocation = mustLoad(VenueZone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load %s: %v", name, err))
	}
	return loc
}

// Location returns the venue time zone.
func Location() *time.Location {
	return venueLocation
}

// LocalToUTC interprets a naive wall-clock string in the venue zone.
// A wall time that occurs twice (clocks going back) resolves to the earlier instant.
// A wall time skipped by clocks going forward is read with the offset in force before the jump,
// so 01:30 on the spring-forward day becomes 01:30Z.
func LocalToUTC(s string) (time.Time, error) {
	wall, err := parseNaive(s)
	if err != nil {
		return time.Time{}, err
	}
	return wallToUTC(wall, venueLocation), nil
}

// UTCToLocal formats t as naive venue wall-clock time.
func UTCToLocal(t time.Time) string {
	return t.In(venueLocation).Format(LocalLayout)
}

// ParseInstant accepts an RFC 3339 timestamp or a naive venue wall-clock string.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return LocalToUTC(s)
}

func parseNaive(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date/time %q", s)
}

// wallToUTC resolves wall (whose fields are read as-is, its zone ignored) in loc.
func wallToUTC(wall time.Time, loc *time.Location) time.Time {
	naive := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), time.UTC)

	// Offsets a day either side bracket any single transition.
	_, before := naive.Add(-24 * time.Hour).In(loc).Zone()
	_, after := naive.Add(24 * time.Hour).In(loc).Zone()

	var matches []time.Time
	for _, off := range []int{before, after} {
		cand := naive.Add(-time.Duration(off) * time.Second)
		if sameWall(cand.In(loc), naive) {
			matches = append(matches, cand)
		}
	}
	switch {
	case len(matches) == 0:
		return naive.Add(-time.Duration(before) * time.Second)
	case len(matches) == 2 && matches[1].Before(matches[0]):
		return matches[1]
	default:
		return matches[0]
	}
}

func sameWall(t, naive time.Time) bool {
	return t.Year() == naive.Year() && t.Month() == naive.Month() && t.Day() == naive.Day() &&
		t.Hour() == naive.Hour() && t.Minute() == naive.Minute() && t.Second() == naive.Second()
}
