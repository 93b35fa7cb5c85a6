package insight

import (
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

const minStreakDays = 3

// checkInStreakDays counts consecutive calendar days with at least one
// check-in, ending at the newest entry's day. Days are midnight-to-midnight in
// loc, not rolling 24h windows. Multiple entries on one day neither break nor
// extend the run; the first gap longer than one day stops it.
func checkInStreakDays(entries []types.CheckIn, loc *time.Location) int {
	if len(entries) == 0 {
		return 0
	}
	days := 1
	prev := entries[0].CreatedAt
	for i := 1; i < len(entries); i++ {
		cur := entries[i].CreatedAt
		gap := daysBetween(cur, prev, loc)
		switch gap {
		case 0:
			continue
		case 1:
			days++
			prev = cur
		default:
			return days
		}
	}
	return days
}

// moodRun counts leading consecutive entries (by index, date gaps ignored)
// whose score satisfies pred.
func moodRun(entries []types.CheckIn, pred func(int) bool) int {
	n := 0
	for i := range entries {
		if !pred(entries[i].Score) {
			break
		}
		n++
	}
	return n
}

// currentStreak picks at most one active streak. A sustained low-mood run is
// the most actionable signal and wins over a high-mood run, which in turn wins
// over plain consistency.
func currentStreak(entries []types.CheckIn, loc *time.Location) *Streak {
	if n := moodRun(entries, func(s int) bool { return s <= lowScoreMax }); n >= minStreakDays {
		return &Streak{Type: StreakLowMood, Days: n}
	}
	if n := moodRun(entries, func(s int) bool { return s >= highScoreMin }); n >= minStreakDays {
		return &Streak{Type: StreakHighMood, Days: n}
	}
	if d := checkInStreakDays(entries, loc); d >= minStreakDays {
		return &Streak{Type: StreakCheckingIn, Days: d}
	}
	return nil
}
