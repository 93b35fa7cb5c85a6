package insight

import (
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

const (
	// affinityMinEntries is the floor before any affinity claim is made.
	affinityMinEntries = 7
	// affinityMinSamples keeps a single outlier entry from deciding a bucket.
	affinityMinSamples = 2
)

var timesOfDay = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeNight}

var weekdays = []string{
	time.Sunday.String(), time.Monday.String(), time.Tuesday.String(),
	time.Wednesday.String(), time.Thursday.String(), time.Friday.String(),
	time.Saturday.String(),
}

// timeOfDayFor buckets a local hour: morning 5-11, afternoon 12-16,
// evening 17-20, night 21-4.
func timeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour <= 11:
		return TimeMorning
	case hour >= 12 && hour <= 16:
		return TimeAfternoon
	case hour >= 17 && hour <= 20:
		return TimeEvening
	default:
		return TimeNight
	}
}

type bucketStat struct {
	sum   int
	count int
}

func (b bucketStat) mean() float64 { return float64(b.sum) / float64(b.count) }

// analyzeTimeAffinity finds when the user tends to score best and worst.
// Time-of-day and day-of-week are judged independently; a bucket needs
// affinityMinSamples entries to be eligible, and nothing is reported at all
// below affinityMinEntries total entries.
func analyzeTimeAffinity(entries []types.CheckIn, loc *time.Location) TimeAffinity {
	var out TimeAffinity
	if len(entries) < affinityMinEntries {
		return out
	}

	byTime := make(map[TimeOfDay]*bucketStat, len(timesOfDay))
	byDay := make(map[string]*bucketStat, len(weekdays))
	for i := range entries {
		local := entries[i].CreatedAt.In(loc)
		tod := timeOfDayFor(local.Hour())
		if byTime[tod] == nil {
			byTime[tod] = &bucketStat{}
		}
		byTime[tod].sum += entries[i].Score
		byTime[tod].count++

		day := local.Weekday().String()
		if byDay[day] == nil {
			byDay[day] = &bucketStat{}
		}
		byDay[day].sum += entries[i].Score
		byDay[day].count++
	}

	if best, worst, ok := pickBuckets(timesOfDay, func(t TimeOfDay) *bucketStat { return byTime[t] }); ok {
		out.BestTimeOfDay = &best
		out.WorstTimeOfDay = &worst
	}
	if best, worst, ok := pickBuckets(weekdays, func(d string) *bucketStat { return byDay[d] }); ok {
		out.BestDayOfWeek = &best
		out.WorstDayOfWeek = &worst
	}
	return out
}

// pickBuckets scans labels in canonical order so equal means resolve to the
// earlier label. ok is false when no bucket meets the sample floor.
func pickBuckets[L comparable](labels []L, stat func(L) *bucketStat) (best, worst L, ok bool) {
	bestMean, worstMean := 0.0, 0.0
	for _, label := range labels {
		s := stat(label)
		if s == nil || s.count < affinityMinSamples {
			continue
		}
		m := s.mean()
		if !ok {
			best, worst, bestMean, worstMean, ok = label, label, m, m, true
			continue
		}
		if m > bestMean {
			best, bestMean = label, m
		}
		if m < worstMean {
			worst, worstMean = label, m
		}
	}
	return best, worst, ok
}
