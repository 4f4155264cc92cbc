package formatter

import (
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
	assert.Equal(t, "Yesterday", HumanTimestamp(now.AddDate(0, 0, -1)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long p...", Truncate("a long piece of text", 11))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}

func TestMoodPill(t *testing.T) {
	got := MoodPill(domain.MoodGreat)
	assert.Contains(t, got, "Great")
	assert.Contains(t, got, domain.MoodGreat.Emoji())

	low := MoodPill(domain.MoodLow)
	assert.Contains(t, low, "Not so good")
}

func TestTrendIndicator(t *testing.T) {
	assert.Contains(t, TrendIndicator("improving"), "Improving")
	assert.Contains(t, TrendIndicator("declining"), "Declining")
	assert.Contains(t, TrendIndicator("steady"), "Steady")
	assert.Contains(t, TrendIndicator(""), "Steady")
}

func TestRecurrenceBadge(t *testing.T) {
	assert.Contains(t, RecurrenceBadge(domain.RecurWeekly), "weekly")
	assert.Contains(t, RecurrenceBadge(domain.RecurNone), "once")
}

func TestTagBadges(t *testing.T) {
	got := TagBadges([]string{"work", "sleep"})
	assert.Contains(t, got, "#work")
	assert.Contains(t, got, "#sleep")

	assert.Contains(t, TagBadges(nil), "--")
}

func TestDueStamp(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	overdue := DueStamp(now.Add(-time.Hour), now)
	assert.Contains(t, overdue, "Aug 30, 2026 11:00")

	future := DueStamp(now.Add(time.Hour), now)
	assert.Contains(t, future, "Aug 30, 2026 13:00")
}
