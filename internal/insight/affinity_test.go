package insight

import (
	"testing"
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

func TestTimeOfDayBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{5, TimeMorning}, {11, TimeMorning},
		{12, TimeAfternoon}, {16, TimeAfternoon},
		{17, TimeEvening}, {20, TimeEvening},
		{21, TimeNight}, {23, TimeNight}, {0, TimeNight}, {4, TimeNight},
	}
	for _, tc := range cases {
		if got := timeOfDayFor(tc.hour); got != tc.want {
			t.Fatalf("timeOfDayFor(%d) = %s, want %s", tc.hour, got, tc.want)
		}
	}
}

func TestAffinityRequiresSevenEntries(t *testing.T) {
	loc := time.UTC
	entries := make([]types.CheckIn, 6)
	for i := range entries {
		entries[i] = types.CheckIn{Score: 5, CreatedAt: time.Date(2024, 4, 10-i, 9, 0, 0, 0, loc)}
	}
	got := analyzeTimeAffinity(entries, loc)
	if got.BestTimeOfDay != nil || got.WorstTimeOfDay != nil || got.BestDayOfWeek != nil || got.WorstDayOfWeek != nil {
		t.Fatalf("affinity under 7 entries = %+v, want all nil", got)
	}
}

func TestAffinityIgnoresSingleSampleBuckets(t *testing.T) {
	loc := time.UTC
	// 6 morning entries and one lone night entry with a perfect score: the
	// night bucket must not win on a single sample.
	entries := []types.CheckIn{
		{Score: 10, CreatedAt: time.Date(2024, 4, 10, 23, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 10, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 9, 9, 0, 0, 0, loc)},
		{Score: 6, CreatedAt: time.Date(2024, 4, 8, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 7, 9, 0, 0, 0, loc)},
		{Score: 6, CreatedAt: time.Date(2024, 4, 6, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 5, 9, 0, 0, 0, loc)},
	}
	got := analyzeTimeAffinity(entries, loc)
	if got.BestTimeOfDay == nil {
		t.Fatalf("expected a time-of-day affinity, got nil")
	}
	if *got.BestTimeOfDay != TimeMorning {
		t.Fatalf("best time of day = %s, want morning (night has 1 sample)", *got.BestTimeOfDay)
	}
}

func TestAffinityBestAndWorstSelection(t *testing.T) {
	loc := time.UTC
	at := func(d, hour int) time.Time { return time.Date(2024, 4, d, hour, 0, 0, 0, loc) }
	// mornings avg 8, evenings avg 3, afternoons avg 5
	entries := []types.CheckIn{
		{Score: 8, CreatedAt: at(10, 9)},
		{Score: 8, CreatedAt: at(9, 10)},
		{Score: 3, CreatedAt: at(10, 18)},
		{Score: 3, CreatedAt: at(9, 19)},
		{Score: 5, CreatedAt: at(10, 13)},
		{Score: 5, CreatedAt: at(9, 14)},
		{Score: 5, CreatedAt: at(8, 13)},
	}
	got := analyzeTimeAffinity(entries, loc)
	if got.BestTimeOfDay == nil || *got.BestTimeOfDay != TimeMorning {
		t.Fatalf("best = %v, want morning", got.BestTimeOfDay)
	}
	if got.WorstTimeOfDay == nil || *got.WorstTimeOfDay != TimeEvening {
		t.Fatalf("worst = %v, want evening", got.WorstTimeOfDay)
	}
}

func TestAffinityDayOfWeekIndependent(t *testing.T) {
	loc := time.UTC
	// April 2024: the 8th and 15th are Mondays, the 9th and 16th Tuesdays.
	entries := []types.CheckIn{
		{Score: 9, CreatedAt: time.Date(2024, 4, 15, 9, 0, 0, 0, loc)},
		{Score: 9, CreatedAt: time.Date(2024, 4, 8, 9, 0, 0, 0, loc)},
		{Score: 2, CreatedAt: time.Date(2024, 4, 16, 9, 0, 0, 0, loc)},
		{Score: 2, CreatedAt: time.Date(2024, 4, 9, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 17, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 10, 9, 0, 0, 0, loc)},
		{Score: 5, CreatedAt: time.Date(2024, 4, 11, 9, 0, 0, 0, loc)},
	}
	got := analyzeTimeAffinity(entries, loc)
	if got.BestDayOfWeek == nil || *got.BestDayOfWeek != "Monday" {
		t.Fatalf("best day = %v, want Monday", got.BestDayOfWeek)
	}
	if got.WorstDayOfWeek == nil || *got.WorstDayOfWeek != "Tuesday" {
		t.Fatalf("worst day = %v, want Tuesday", got.WorstDayOfWeek)
	}
	// All entries are mornings, so time-of-day has one eligible bucket: best
	// and worst both point at it.
	if got.BestTimeOfDay == nil || got.WorstTimeOfDay == nil || *got.BestTimeOfDay != *got.WorstTimeOfDay {
		t.Fatalf("single-bucket time affinity = %+v", got)
	}
}
