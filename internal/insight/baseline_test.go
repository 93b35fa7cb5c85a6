package insight

import (
	"math"
	"testing"
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

func constEntries(score, n int) []types.CheckIn {
	base := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	out := make([]types.CheckIn, n)
	for i := range out {
		out[i] = types.CheckIn{Score: score, CreatedAt: base.AddDate(0, 0, -i)}
	}
	return out
}

func TestCompareBaselineBetter(t *testing.T) {
	// recent 7.0, all 6.4, diff 0.6 -> better
	all := append(constEntries(7, 8), constEntries(4, 2)...)
	recent := constEntries(7, 7)
	verdict, diff, avg, recentAvg := compareBaseline(all, recent)
	if math.Abs(avg-6.4) > 1e-9 || math.Abs(recentAvg-7.0) > 1e-9 {
		t.Fatalf("averages = %v/%v, want 6.4/7.0", avg, recentAvg)
	}
	if verdict != BaselineBetter || math.Abs(diff-0.6) > 1e-9 {
		t.Fatalf("verdict=%s diff=%v, want better/0.6", verdict, diff)
	}
}

func TestBaselineBoundaryIsExclusive(t *testing.T) {
	// recent 7.0 vs all 6.5: diff exactly 0.5 stays "same"
	all := append(constEntries(7, 6), constEntries(6, 6)...)
	recent := constEntries(7, 6)
	verdict, diff, _, _ := compareBaseline(all, recent)
	if math.Abs(diff-0.5) > 1e-9 {
		t.Fatalf("diff = %v, want exactly 0.5", diff)
	}
	if verdict != BaselineSame {
		t.Fatalf("verdict = %s, want same at the boundary", verdict)
	}
}

func TestBaselineWorse(t *testing.T) {
	// recent 3.0 vs all 4.0
	all := append(constEntries(3, 5), constEntries(5, 5)...)
	recent := constEntries(3, 5)
	verdict, diff, _, _ := compareBaseline(all, recent)
	if verdict != BaselineWorse || diff >= -0.5 {
		t.Fatalf("verdict=%s diff=%v, want worse with diff < -0.5", verdict, diff)
	}
}

func TestBaselineColdStart(t *testing.T) {
	verdict, diff, avg, recentAvg := compareBaseline(nil, nil)
	if verdict != BaselineSame || diff != 0 || avg != 0 || recentAvg != 0 {
		t.Fatalf("cold start = %s/%v/%v/%v, want same/0/0/0", verdict, diff, avg, recentAvg)
	}
}
