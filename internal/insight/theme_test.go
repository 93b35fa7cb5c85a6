package insight

import (
	"testing"
	"time"

	types "github.com/sundialapp/sundial-backend/internal/domain"
)

func noteEntry(note string, at time.Time) types.CheckIn {
	return types.CheckIn{Score: 5, Note: note, CreatedAt: at}
}

func TestThemeRulesLoad(t *testing.T) {
	if len(themeRules) == 0 {
		t.Fatal("embedded theme rules did not load")
	}
	for _, r := range themeRules {
		if r.Theme == "" || len(r.Keywords) == 0 {
			t.Fatalf("incomplete rule %+v", r)
		}
		switch r.Sentiment {
		case SentimentPositive, SentimentNegative, SentimentNeutral:
		default:
			t.Fatalf("rule %q has unknown sentiment %q", r.Theme, r.Sentiment)
		}
	}
}

func TestSingleMentionIsNoise(t *testing.T) {
	at := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	entries := []types.CheckIn{
		noteEntry("rough day at work", at),
		noteEntry("quiet evening", at.AddDate(0, 0, -1)),
	}
	themes := extractThemes(entries)
	if len(themes) != 0 {
		t.Fatalf("one work mention produced %+v, want nothing", themes)
	}
}

func TestTwoMentionsBecomeRecurring(t *testing.T) {
	newer := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	older := newer.AddDate(0, 0, -3)
	entries := []types.CheckIn{
		noteEntry("work deadline looming again", newer),
		noteEntry("stressful day at work", older),
	}
	themes := extractThemes(entries)
	if len(themes) != 1 {
		t.Fatalf("got %d themes, want 1: %+v", len(themes), themes)
	}
	got := themes[0]
	if got.Theme != "work stress" || got.Frequency != 2 || got.Sentiment != SentimentNegative {
		t.Fatalf("theme = %+v", got)
	}
	if !got.LastMentioned.Equal(newer) {
		t.Fatalf("lastMentioned = %v, want the newer entry %v", got.LastMentioned, newer)
	}
}

func TestOneNoteCanHitMultipleThemes(t *testing.T) {
	at := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	entries := []types.CheckIn{
		noteEntry("tired from work, barely slept", at),
		noteEntry("work again and more bad sleep", at.AddDate(0, 0, -1)),
	}
	themes := extractThemes(entries)
	if len(themes) != 2 {
		t.Fatalf("got %d themes, want work stress and poor sleep: %+v", len(themes), themes)
	}
}

func TestThemeOrderingAndCap(t *testing.T) {
	rules := []themeRule{
		{Theme: "alpha", Sentiment: SentimentNeutral, Keywords: []string{"alpha"}},
		{Theme: "bravo", Sentiment: SentimentNeutral, Keywords: []string{"bravo"}},
		{Theme: "charlie", Sentiment: SentimentNeutral, Keywords: []string{"charlie"}},
		{Theme: "delta", Sentiment: SentimentNeutral, Keywords: []string{"delta"}},
		{Theme: "echo", Sentiment: SentimentNeutral, Keywords: []string{"echo"}},
		{Theme: "foxtrot", Sentiment: SentimentNeutral, Keywords: []string{"foxtrot"}},
	}
	at := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	var entries []types.CheckIn
	add := func(note string, n int) {
		for i := 0; i < n; i++ {
			entries = append(entries, noteEntry(note, at.AddDate(0, 0, -len(entries))))
		}
	}
	add("delta", 4)
	// bravo and charlie tie at 3; rule order must keep bravo first
	add("charlie", 3)
	add("bravo", 3)
	add("alpha", 2)
	add("echo", 2)
	add("foxtrot", 2)

	themes := extractThemesWithRules(entries, rules)
	if len(themes) != maxThemes {
		t.Fatalf("got %d themes, want capped at %d", len(themes), maxThemes)
	}
	wantOrder := []string{"delta", "bravo", "charlie", "alpha", "echo"}
	for i, want := range wantOrder {
		if themes[i].Theme != want {
			t.Fatalf("themes[%d] = %s, want %s (full: %+v)", i, themes[i].Theme, want, themes)
		}
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	at := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	entries := []types.CheckIn{
		noteEntry("WORK was brutal", at),
		noteEntry("Work stuff piling up", at.AddDate(0, 0, -1)),
	}
	themes := extractThemes(entries)
	if len(themes) != 1 || themes[0].Theme != "work stress" {
		t.Fatalf("mixed-case notes gave %+v", themes)
	}
}
