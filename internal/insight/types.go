package insight

import (
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

type PatternType string

const (
	PatternStreakLow  PatternType = "streak_low"
	PatternStreakHigh PatternType = "streak_high"
	PatternDeclining  PatternType = "declining"
	PatternImproving  PatternType = "improving"
	PatternVolatile   PatternType = "volatile"
	PatternStable     PatternType = "stable"
)

type Severity string

const (
	SeverityMild        Severity = "mild"
	SeverityModerate    Severity = "moderate"
	SeveritySignificant Severity = "significant"
)

// TrendPattern is the single highest-priority classification of the user's
// recent mood trajectory. At most one is active per analysis.
type TrendPattern struct {
	Type         PatternType `json:"type"`
	Description  string      `json:"description"`
	Severity     Severity    `json:"severity"`
	DaysAffected int         `json:"days_affected"`
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// TimeAffinity reports when the user tends to feel best and worst. Nil fields
// mean insufficient samples, never "no preference".
type TimeAffinity struct {
	BestTimeOfDay  *TimeOfDay `json:"best_time_of_day"`
	WorstTimeOfDay *TimeOfDay `json:"worst_time_of_day"`
	BestDayOfWeek  *string    `json:"best_day_of_week"`
	WorstDayOfWeek *string    `json:"worst_day_of_week"`
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// RecurringTheme is a canonical label seen in at least two entries' notes.
type RecurringTheme struct {
	Theme         string    `json:"theme"`
	Frequency     int       `json:"frequency"`
	Sentiment     Sentiment `json:"sentiment"`
	LastMentioned time.Time `json:"last_mentioned"`
}

type StreakType string

const (
	StreakCheckingIn StreakType = "checking_in"
	StreakLowMood    StreakType = "low_mood"
	StreakHighMood   StreakType = "high_mood"
)

// Streak is the single active run, chosen by priority
// low_mood > high_mood > checking_in. Days is always >= 3.
type Streak struct {
	Type StreakType `json:"type"`
	Days int        `json:"days"`
}

type BaselineVerdict string

const (
	BaselineBetter BaselineVerdict = "better"
	BaselineWorse  BaselineVerdict = "worse"
	BaselineSame   BaselineVerdict = "same"
)

// ContextBundle is the complete derived summary for one user, recomputed from
// raw rows on every analysis. It is never mutated after assembly.
type ContextBundle struct {
	TotalCheckIns        int              `json:"total_check_ins"`
	AverageMood          float64          `json:"average_mood"`
	RecentAverageMood    float64          `json:"recent_average_mood"`
	LastCheckIn          *types.CheckIn   `json:"last_check_in"`
	DaysSinceLastCheckIn int              `json:"days_since_last_check_in"`
	CurrentPattern       *TrendPattern    `json:"current_pattern"`
	TimeAffinity         TimeAffinity     `json:"time_affinity"`
	RecurringThemes      []RecurringTheme `json:"recurring_themes"`
	ComparedToBaseline   BaselineVerdict  `json:"compared_to_baseline"`
	BaselineDifference   float64          `json:"baseline_difference"`
	CurrentStreak        *Streak          `json:"current_streak"`
}
