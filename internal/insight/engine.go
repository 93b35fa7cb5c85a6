package insight

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

// EntrySource is the storage collaborator boundary: newest-first raw rows,
// already validated (score 1-10, timestamps present). Fetch retries and
// backoff live behind this interface, not in the engine.
type EntrySource interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]types.CheckIn, error)
}

// Engine derives a ContextBundle from raw check-in history. It is stateless:
// every Analyze call is a pure function of (entries, timeZone, now) and
// allocates only request-scoped data, so concurrent calls never interact.
type Engine struct {
	entries EntrySource
	log     *logger.Logger
	now     func() time.Time
}

func NewEngine(entries EntrySource, baseLog *logger.Logger) *Engine {
	return &Engine{
		entries: entries,
		log:     baseLog.With("service", "InsightEngine"),
		now:     time.Now,
	}
}

// Analyze produces a fresh bundle for one user. It never fails: a fetch error
// is treated as an empty history and a brand-new user gets the cold-start
// bundle. timeZone is an optional IANA name; invalid values fall back to
// server-local day math.
func (e *Engine) Analyze(ctx context.Context, userID uuid.UUID, timeZone string) *ContextBundle {
	rows, err := e.entries.ListRecent(ctx, userID, fetchLimit)
	if err != nil {
		e.log.Warn("check-in fetch failed, analyzing as empty history", "error", err, "user_id", userID)
		rows = nil
	}

	w := newWindow(rows, timeZone)
	if w.localFallback && timeZone != "" {
		e.log.Debug("unknown time zone, using server-local days", "time_zone", timeZone)
	}
	if len(w.all) == 0 {
		return coldStartBundle()
	}
	return e.assemble(ctx, w)
}

// assemble runs the four analyzers over the same windowed data and merges
// their outputs. The analyzers are independent of each other, so they run
// concurrently; none of them can fail.
func (e *Engine) assemble(ctx context.Context, w window) *ContextBundle {
	var (
		pattern  *TrendPattern
		streak   *Streak
		affinity TimeAffinity
		themes   []RecurringTheme
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		pattern = classifyPattern(w.recent)
		return nil
	})
	g.Go(func() error {
		streak = currentStreak(w.all, w.loc)
		return nil
	})
	g.Go(func() error {
		affinity = analyzeTimeAffinity(w.all, w.loc)
		return nil
	})
	g.Go(func() error {
		themes = extractThemes(w.all)
		return nil
	})
	_ = g.Wait()

	verdict, diff, average, recentAverage := compareBaseline(w.all, w.recent)

	last := w.all[0]
	return &ContextBundle{
		TotalCheckIns:        len(w.all),
		AverageMood:          average,
		RecentAverageMood:    recentAverage,
		LastCheckIn:          &last,
		DaysSinceLastCheckIn: daysBetween(last.CreatedAt, e.now(), w.loc),
		CurrentPattern:       pattern,
		TimeAffinity:         affinity,
		RecurringThemes:      themes,
		ComparedToBaseline:   verdict,
		BaselineDifference:   diff,
		CurrentStreak:        streak,
	}
}

// coldStartBundle is the fixed response for users with no history. Every
// derived field sits at its null/zero/empty default; -1 marks "never checked
// in" as distinct from "checked in today".
func coldStartBundle() *ContextBundle {
	return &ContextBundle{
		TotalCheckIns:        0,
		AverageMood:          0,
		RecentAverageMood:    0,
		LastCheckIn:          nil,
		DaysSinceLastCheckIn: -1,
		CurrentPattern:       nil,
		TimeAffinity:         TimeAffinity{},
		RecurringThemes:      []RecurringTheme{},
		ComparedToBaseline:   BaselineSame,
		BaselineDifference:   0,
		CurrentStreak:        nil,
	}
}
