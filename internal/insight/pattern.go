package insight

import (
	"fmt"
	"math"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

const (
	lowScoreMax  = 4
	highScoreMin = 7
)

// classifyPattern applies the trend checks in strict priority order and
// returns the first match. Concerning states (low streaks) are checked first
// so a milder "volatile" or "stable" label can never mask them. Fewer than 3
// recent entries yields no classification at all.
func classifyPattern(recent []types.CheckIn) *TrendPattern {
	if len(recent) < 3 {
		return nil
	}
	scores := make([]int, len(recent))
	for i := range recent {
		scores[i] = recent[i].Score
	}

	if n := leadingRun(scores, func(s int) bool { return s <= lowScoreMax }); n >= 3 {
		sev := SeverityMild
		switch {
		case n >= 5:
			sev = SeveritySignificant
		case n == 4:
			sev = SeverityModerate
		}
		return &TrendPattern{
			Type:         PatternStreakLow,
			Description:  fmt.Sprintf("mood has been %d or below for the last %d check-ins", lowScoreMax, n),
			Severity:     sev,
			DaysAffected: n,
		}
	}

	if n := leadingRun(scores, func(s int) bool { return s >= highScoreMin }); n >= 3 {
		// A long good run is welcome, not concerning.
		return &TrendPattern{
			Type:         PatternStreakHigh,
			Description:  fmt.Sprintf("mood has been %d or above for the last %d check-ins", highScoreMin, n),
			Severity:     SeverityMild,
			DaysAffected: n,
		}
	}

	// Strict 3-point monotonic checks; ties produce no trend on purpose.
	// Scores are newest first, so rising values toward index 2 mean the user
	// has been sliding downward approaching now.
	if scores[0] < scores[1] && scores[1] < scores[2] && scores[0] <= 5 {
		sev := SeverityModerate
		if scores[0] <= 3 {
			sev = SeveritySignificant
		}
		return &TrendPattern{
			Type:         PatternDeclining,
			Description:  fmt.Sprintf("mood has dropped over the last 3 check-ins, now at %d", scores[0]),
			Severity:     sev,
			DaysAffected: 3,
		}
	}

	if scores[0] > scores[1] && scores[1] > scores[2] {
		return &TrendPattern{
			Type:         PatternImproving,
			Description:  fmt.Sprintf("mood has climbed over the last 3 check-ins, now at %d", scores[0]),
			Severity:     SeverityMild,
			DaysAffected: 3,
		}
	}

	variance := populationVariance(scores)
	if variance > 4 {
		sev := SeverityModerate
		if variance > 6 {
			sev = SeveritySignificant
		}
		return &TrendPattern{
			Type:         PatternVolatile,
			Description:  "mood has been swinging widely between recent check-ins",
			Severity:     sev,
			DaysAffected: len(scores),
		}
	}
	if variance < 2 {
		mean := 0.0
		for _, s := range scores {
			mean += float64(s)
		}
		mean /= float64(len(scores))
		return &TrendPattern{
			Type:         PatternStable,
			Description:  fmt.Sprintf("mood has held steady around %d", int(math.Round(mean))),
			Severity:     SeverityMild,
			DaysAffected: len(scores),
		}
	}

	return nil
}

// leadingRun counts entries from the front (newest) while pred holds.
func leadingRun(scores []int, pred func(int) bool) int {
	n := 0
	for _, s := range scores {
		if !pred(s) {
			break
		}
		n++
	}
	return n
}

func populationVariance(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	mean := 0.0
	for _, s := range scores {
		mean += float64(s)
	}
	mean /= float64(len(scores))
	ss := 0.0
	for _, s := range scores {
		d := float64(s) - mean
		ss += d * d
	}
	return ss / float64(len(scores))
}
