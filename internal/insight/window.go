package insight

import (
	"strings"
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

const (
	// fetchLimit bounds how much history a single analysis looks at.
	fetchLimit = 30
	// recentSize is the short window the classifier and baseline use.
	recentSize = 7
)

// window holds the two views every analyzer reads: the full fetched history
// (newest first, capped at fetchLimit) and the recent slice of it.
type window struct {
	all    []types.CheckIn
	recent []types.CheckIn
	loc    *time.Location

	// localFallback is set when the caller's zone was missing or unparseable
	// and day math fell back to the server's local calendar.
	localFallback bool
}

func newWindow(entries []types.CheckIn, timeZone string) window {
	loc, fallback := resolveLocation(timeZone)
	if len(entries) > fetchLimit {
		entries = entries[:fetchLimit]
	}
	recent := entries
	if len(recent) > recentSize {
		recent = recent[:recentSize]
	}
	return window{all: entries, recent: recent, loc: loc, localFallback: fallback}
}

// resolveLocation maps an IANA zone name to a location. An empty or invalid
// name deterministically falls back to server-local time; this is a documented
// recovery branch, not an error.
func resolveLocation(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.Local, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, true
	}
	return loc, false
}

// dayKey collapses an instant to its calendar day in loc. Two instants share a
// key iff they fall between the same pair of local midnights.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// daysBetween returns the whole calendar days from a's day to b's day in loc
// (positive when b is later). Midnights are compared in UTC so DST shifts
// cannot skew the count.
func daysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	am0 := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bm0 := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bm0.Sub(am0) / (24 * time.Hour))
}

func meanScore(entries []types.CheckIn) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for i := range entries {
		sum += entries[i].Score
	}
	return float64(sum) / float64(len(entries))
}
