package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type fakeSource struct {
	entries []types.CheckIn
	err     error
	gotUser uuid.UUID
	gotLim  int
}

func (f *fakeSource) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]types.CheckIn, error) {
	f.gotUser = userID
	f.gotLim = limit
	return f.entries, f.err
}

func newTestEngine(t *testing.T, src EntrySource) *Engine {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewEngine(src, log)
}

func assertColdStart(t *testing.T, b *ContextBundle) {
	t.Helper()
	if b.TotalCheckIns != 0 {
		t.Fatalf("TotalCheckIns = %d, want 0", b.TotalCheckIns)
	}
	if b.DaysSinceLastCheckIn != -1 {
		t.Fatalf("DaysSinceLastCheckIn = %d, want -1", b.DaysSinceLastCheckIn)
	}
	if b.CurrentPattern != nil || b.CurrentStreak != nil || b.LastCheckIn != nil {
		t.Fatalf("cold start carries derived values: %+v", b)
	}
	if b.RecurringThemes == nil || len(b.RecurringThemes) != 0 {
		t.Fatalf("RecurringThemes = %#v, want empty non-nil slice", b.RecurringThemes)
	}
	if b.ComparedToBaseline != BaselineSame || b.BaselineDifference != 0 {
		t.Fatalf("baseline = %s/%v, want same/0", b.ComparedToBaseline, b.BaselineDifference)
	}
	if b.AverageMood != 0 || b.RecentAverageMood != 0 {
		t.Fatalf("averages = %v/%v, want 0/0", b.AverageMood, b.RecentAverageMood)
	}
}

func TestAnalyzeColdStart(t *testing.T) {
	src := &fakeSource{}
	e := newTestEngine(t, src)

	b := e.Analyze(context.Background(), uuid.New(), "UTC")
	assertColdStart(t, b)
	if src.gotLim != fetchLimit {
		t.Fatalf("fetch limit = %d, want %d", src.gotLim, fetchLimit)
	}
}

func TestAnalyzeFetchFailureIsColdStart(t *testing.T) {
	src := &fakeSource{err: errors.New("storage down")}
	e := newTestEngine(t, src)

	b := e.Analyze(context.Background(), uuid.New(), "UTC")
	assertColdStart(t, b)
}

func TestAnalyzeAssemblesFullBundle(t *testing.T) {
	now := time.Date(2024, 4, 12, 10, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 4, d, 9, 0, 0, 0, time.UTC) }

	entries := []types.CheckIn{
		{Score: 2, Note: "work was brutal", CreatedAt: day(10)},
		{Score: 3, Note: "so tired, no sleep", CreatedAt: day(9)},
		{Score: 4, Note: "work again", CreatedAt: day(8)},
		{Score: 3, Note: "couldn't sleep", CreatedAt: day(7)},
		{Score: 7, CreatedAt: day(6)},
		{Score: 8, CreatedAt: day(5)},
		{Score: 7, CreatedAt: day(4)},
		{Score: 8, CreatedAt: day(3)},
		{Score: 7, CreatedAt: day(2)},
	}
	src := &fakeSource{entries: entries}
	e := newTestEngine(t, src)
	e.now = func() time.Time { return now }

	b := e.Analyze(context.Background(), uuid.New(), "UTC")

	if b.TotalCheckIns != len(entries) {
		t.Fatalf("TotalCheckIns = %d, want %d", b.TotalCheckIns, len(entries))
	}
	if b.LastCheckIn == nil || !b.LastCheckIn.CreatedAt.Equal(day(10)) {
		t.Fatalf("LastCheckIn = %+v, want newest entry", b.LastCheckIn)
	}
	if b.DaysSinceLastCheckIn != 2 {
		t.Fatalf("DaysSinceLastCheckIn = %d, want 2", b.DaysSinceLastCheckIn)
	}
	if b.CurrentPattern == nil || b.CurrentPattern.Type != PatternStreakLow {
		t.Fatalf("CurrentPattern = %+v, want streak_low", b.CurrentPattern)
	}
	if b.CurrentPattern.Severity != SeverityModerate || b.CurrentPattern.DaysAffected != 4 {
		t.Fatalf("pattern = %+v, want moderate over 4", b.CurrentPattern)
	}
	if b.CurrentStreak == nil || b.CurrentStreak.Type != StreakLowMood || b.CurrentStreak.Days != 4 {
		t.Fatalf("CurrentStreak = %+v, want low_mood/4", b.CurrentStreak)
	}
	// 9 entries: affinity runs; all at 09:00 so morning is the only eligible
	// time bucket.
	if b.TimeAffinity.BestTimeOfDay == nil || *b.TimeAffinity.BestTimeOfDay != TimeMorning {
		t.Fatalf("TimeAffinity = %+v, want morning best", b.TimeAffinity)
	}
	wantThemes := map[string]int{"work stress": 2, "poor sleep": 2}
	if len(b.RecurringThemes) != len(wantThemes) {
		t.Fatalf("themes = %+v, want %v", b.RecurringThemes, wantThemes)
	}
	for _, th := range b.RecurringThemes {
		if wantThemes[th.Theme] != th.Frequency {
			t.Fatalf("theme %q freq %d, want %d", th.Theme, th.Frequency, wantThemes[th.Theme])
		}
	}
	// all mean = 49/9 ≈ 5.444; recent (first 7) = 34/7 ≈ 4.857; diff ≈ -0.587
	if b.ComparedToBaseline != BaselineWorse {
		t.Fatalf("baseline verdict = %s (diff %v), want worse", b.ComparedToBaseline, b.BaselineDifference)
	}
}

func TestAnalyzeInvalidZoneFallsBack(t *testing.T) {
	entries := scoresToEntries(5, 5, 5)
	src := &fakeSource{entries: entries}
	e := newTestEngine(t, src)

	// Must not panic or fail; day math silently uses server-local time.
	b := e.Analyze(context.Background(), uuid.New(), "Mars/OlympusMons")
	if b.TotalCheckIns != 3 {
		t.Fatalf("TotalCheckIns = %d, want 3", b.TotalCheckIns)
	}
}
