package insight

import (
	"fmt"
	"strings"
)

// NewCheckIn is the check-in currently being submitted. It frames the current
// situation for the coaching prompt only; it is never fed back into the
// statistical components.
type NewCheckIn struct {
	Score int
	Note  string
}

// Narrative is the grounding payload handed to the generative-coaching
// collaborator. Plain text blocks, not a serialized protocol; nothing here is
// final user-facing copy.
type Narrative struct {
	SystemContext      string `json:"system_context"`
	HistoricalInsights string `json:"historical_insights"`
	CurrentSituation   string `json:"current_situation"`
	SuggestedApproach  string `json:"suggested_approach"`
}

// Coaching stances, consumed as a tag by the generative collaborator.
const (
	ApproachWarmWelcome            = "warm_welcome"
	ApproachGentleSupport          = "gentle_support"
	ApproachCelebrateMomentum      = "celebrate_momentum"
	ApproachAcknowledgeConsistency = "acknowledge_consistency"
	ApproachProactiveCare          = "proactive_care"
	ApproachBalancedListening      = "balanced_listening"
)

const systemContext = "You are a warm, grounded wellbeing coach inside a daily " +
	"check-in app. Mood is scored 1-10. Use the observations below as context; " +
	"respond to what the user actually said, keep replies short, and never " +
	"diagnose or prescribe."

// BuildNarrative renders a bundle into deterministic insight sentences. Fixed
// rule-to-sentence mapping: each non-null derived field contributes one
// templated line, and the stance comes from a small decision table.
func BuildNarrative(b *ContextBundle, incoming *NewCheckIn) Narrative {
	return Narrative{
		SystemContext:      systemContext,
		HistoricalInsights: historicalInsights(b),
		CurrentSituation:   currentSituation(b, incoming),
		SuggestedApproach:  suggestApproach(b),
	}
}

func suggestApproach(b *ContextBundle) string {
	switch {
	case b.TotalCheckIns == 0:
		return ApproachWarmWelcome
	case b.CurrentStreak != nil && b.CurrentStreak.Type == StreakLowMood:
		return ApproachGentleSupport
	case b.CurrentStreak != nil && b.CurrentStreak.Type == StreakHighMood:
		return ApproachCelebrateMomentum
	case b.CurrentStreak != nil && b.CurrentStreak.Type == StreakCheckingIn:
		return ApproachAcknowledgeConsistency
	case b.CurrentPattern != nil && b.CurrentPattern.Type == PatternDeclining:
		return ApproachProactiveCare
	default:
		return ApproachBalancedListening
	}
}

func historicalInsights(b *ContextBundle) string {
	if b.TotalCheckIns == 0 {
		return "This is a brand-new user with no check-in history yet."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf(
		"They have logged %d check-ins. All-time average mood is %.1f; the last 7 average %.1f.",
		b.TotalCheckIns, b.AverageMood, b.RecentAverageMood))

	if s := patternSentence(b.CurrentPattern); s != "" {
		lines = append(lines, s)
	}
	if s := streakSentence(b.CurrentStreak); s != "" {
		lines = append(lines, s)
	}
	lines = append(lines, affinitySentences(b.TimeAffinity)...)
	if s := themesSentence(b.RecurringThemes); s != "" {
		lines = append(lines, s)
	}
	lines = append(lines, baselineSentence(b.ComparedToBaseline, b.BaselineDifference))

	return strings.Join(lines, "\n")
}

func patternSentence(p *TrendPattern) string {
	if p == nil {
		return ""
	}
	switch p.Type {
	case PatternStreakLow:
		if p.Severity == SeveritySignificant {
			return fmt.Sprintf("Important: they have reported low mood for %d check-ins in a row. Tread gently and take this seriously.", p.DaysAffected)
		}
		return fmt.Sprintf("They have reported low mood for %d consecutive check-ins.", p.DaysAffected)
	case PatternStreakHigh:
		return fmt.Sprintf("They have been feeling good for %d consecutive check-ins.", p.DaysAffected)
	case PatternDeclining:
		if p.Severity == SeveritySignificant {
			return "Their mood has been sliding sharply over the last few check-ins and is now quite low."
		}
		return "Their mood has been trending downward over the last few check-ins."
	case PatternImproving:
		return "Their mood has been trending upward over the last few check-ins."
	case PatternVolatile:
		return "Their recent mood has swung widely from one check-in to the next."
	case PatternStable:
		return "Their " + p.Description + "."
	default:
		return ""
	}
}

func streakSentence(s *Streak) string {
	if s == nil {
		return ""
	}
	switch s.Type {
	case StreakLowMood:
		return fmt.Sprintf("Active low-mood streak: %d entries.", s.Days)
	case StreakHighMood:
		return fmt.Sprintf("Active high-mood streak: %d entries.", s.Days)
	case StreakCheckingIn:
		return fmt.Sprintf("They have checked in %d days in a row.", s.Days)
	default:
		return ""
	}
}

func affinitySentences(a TimeAffinity) []string {
	var out []string
	if a.BestTimeOfDay != nil && a.WorstTimeOfDay != nil {
		if *a.BestTimeOfDay == *a.WorstTimeOfDay {
			out = append(out, fmt.Sprintf("Most of their check-ins land in the %s.", *a.BestTimeOfDay))
		} else {
			out = append(out, fmt.Sprintf("They tend to feel best in the %s and worst in the %s.", *a.BestTimeOfDay, *a.WorstTimeOfDay))
		}
	}
	if a.BestDayOfWeek != nil && a.WorstDayOfWeek != nil && *a.BestDayOfWeek != *a.WorstDayOfWeek {
		out = append(out, fmt.Sprintf("%ss tend to be their better days; %ss their harder ones.", *a.BestDayOfWeek, *a.WorstDayOfWeek))
	}
	return out
}

func themesSentence(themes []RecurringTheme) string {
	if len(themes) == 0 {
		return ""
	}
	parts := make([]string, len(themes))
	for i, t := range themes {
		parts[i] = fmt.Sprintf("%s (%s, %dx)", t.Theme, t.Sentiment, t.Frequency)
	}
	return "Recurring themes in their notes: " + strings.Join(parts, ", ") + "."
}

func baselineSentence(v BaselineVerdict, diff float64) string {
	switch v {
	case BaselineBetter:
		return fmt.Sprintf("The recent week is running %.1f points above their baseline.", diff)
	case BaselineWorse:
		return fmt.Sprintf("The recent week is running %.1f points below their baseline.", -diff)
	default:
		return "The recent week is in line with their baseline."
	}
}

func currentSituation(b *ContextBundle, incoming *NewCheckIn) string {
	if incoming == nil {
		if b.LastCheckIn == nil {
			return "No check-in has been submitted yet."
		}
		return fmt.Sprintf("No new check-in right now; their last one scored %d.", b.LastCheckIn.Score)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "They just checked in with a mood of %d/10.", incoming.Score)
	if incoming.Note != "" {
		fmt.Fprintf(&sb, " Their note: %q.", incoming.Note)
	}
	if b.LastCheckIn != nil {
		delta := incoming.Score - b.LastCheckIn.Score
		switch {
		case delta > 0:
			fmt.Fprintf(&sb, " That is up %d from their previous %d.", delta, b.LastCheckIn.Score)
		case delta < 0:
			fmt.Fprintf(&sb, " That is down %d from their previous %d.", -delta, b.LastCheckIn.Score)
		default:
			fmt.Fprintf(&sb, " That matches their previous check-in.")
		}
		if b.DaysSinceLastCheckIn > 1 {
			fmt.Fprintf(&sb, " It has been %d days since they last checked in.", b.DaysSinceLastCheckIn)
		}
	} else {
		sb.WriteString(" This is their very first check-in.")
	}
	return sb.String()
}
