package insight

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

const (
	// minThemeFrequency: a single mention is noise, not a recurring theme.
	minThemeFrequency = 2
	maxThemes         = 5
)

type themeRule struct {
	Theme     string    `yaml:"theme"`
	Sentiment Sentiment `yaml:"sentiment"`
	Keywords  []string  `yaml:"keywords"`
}

func (r themeRule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

//go:embed themes.yaml
var themesYAML []byte

var themeRules = mustLoadThemeRules(themesYAML)

func mustLoadThemeRules(raw []byte) []themeRule {
	var doc struct {
		Rules []themeRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("insight: bad embedded theme rules: %v", err))
	}
	if len(doc.Rules) == 0 {
		panic("insight: embedded theme rules are empty")
	}
	for _, r := range doc.Rules {
		if r.Theme == "" || len(r.Keywords) == 0 {
			panic(fmt.Sprintf("insight: incomplete theme rule %q", r.Theme))
		}
	}
	return doc.Rules
}

// extractThemes mines recurring qualitative themes from entry notes. Every
// rule is tried against every note (one note can hit several themes), counts
// aggregate per theme label, and only themes seen in at least
// minThemeFrequency entries survive. The top maxThemes by frequency are
// returned; ties keep rule-table order.
func extractThemes(entries []types.CheckIn) []RecurringTheme {
	return extractThemesWithRules(entries, themeRules)
}

func extractThemesWithRules(entries []types.CheckIn, rules []themeRule) []RecurringTheme {
	type agg struct {
		count int
		last  time.Time
	}
	hits := make([]agg, len(rules))

	for i := range entries {
		if !entries[i].HasNote() {
			continue
		}
		lowered := strings.ToLower(entries[i].Note)
		for ri := range rules {
			if !rules[ri].matches(lowered) {
				continue
			}
			hits[ri].count++
			if entries[i].CreatedAt.After(hits[ri].last) {
				hits[ri].last = entries[i].CreatedAt
			}
		}
	}

	type ranked struct {
		order int
		theme RecurringTheme
	}
	var kept []ranked
	for ri := range rules {
		if hits[ri].count < minThemeFrequency {
			continue
		}
		kept = append(kept, ranked{
			order: ri,
			theme: RecurringTheme{
				Theme:         rules[ri].Theme,
				Frequency:     hits[ri].count,
				Sentiment:     rules[ri].Sentiment,
				LastMentioned: hits[ri].last,
			},
		})
	}

	sort.Slice(kept, func(a, b int) bool {
		if kept[a].theme.Frequency != kept[b].theme.Frequency {
			return kept[a].theme.Frequency > kept[b].theme.Frequency
		}
		return kept[a].order < kept[b].order
	})

	if len(kept) > maxThemes {
		kept = kept[:maxThemes]
	}
	out := make([]RecurringTheme, len(kept))
	for i := range kept {
		out[i] = kept[i].theme
	}
	return out
}
