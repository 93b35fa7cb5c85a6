package insight

import types "github.com/sundialapp/sundial-backend/internal/domain"

// baselineBand: differences within +/-0.5 of the all-time mean read as "same".
// The boundary itself is exclusive.
const baselineBand = 0.5

// compareBaseline scores the recent window against the user's all-time mean.
// Zero entries is a fixed, well-defined default (same, 0, 0, 0), not an
// absent value.
func compareBaseline(all, recent []types.CheckIn) (verdict BaselineVerdict, diff, average, recentAverage float64) {
	if len(all) == 0 {
		return BaselineSame, 0, 0, 0
	}
	average = meanScore(all)
	recentAverage = meanScore(recent)
	diff = recentAverage - average
	switch {
	case diff > baselineBand:
		verdict = BaselineBetter
	case diff < -baselineBand:
		verdict = BaselineWorse
	default:
		verdict = BaselineSame
	}
	return verdict, diff, average, recentAverage
}
