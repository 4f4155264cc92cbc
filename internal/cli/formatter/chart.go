package formatter

import (
	"strconv"
	"strings"

	"github.com/mwhelan/solace/internal/domain"
)

const moodBlock = "█"

// MoodBar renders a horizontal bar proportional to a mood value (1-5),
// colored by the mood level.
func MoodBar(level domain.MoodLevel, width int) string {
	if width < 5 {
		width = 5
	}
	filled := level.Value() * width / 5
	if filled < 1 {
		filled = 1
	}
	bar := strings.Repeat(moodBlock, filled)
	return MoodStyle(level).Render(bar)
}

// RenderMoodHistory renders one row per entry: date, bar, emoji and label.
// Entries are shown in the order given.
func RenderMoodHistory(entries []*domain.MoodEntry, barWidth int) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(StyleDim.Render(e.RecordedAt.Format("Jan 02")))
		b.WriteString("  ")
		bar := MoodBar(e.Level, barWidth)
		pad := barWidth - e.Level.Value()*barWidth/5
		if pad < 0 {
			pad = 0
		}
		b.WriteString(bar)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString("  ")
		b.WriteString(MoodPill(e.Level))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMoodDistribution renders a count bar per mood level, best to worst.
func RenderMoodDistribution(byLevel map[domain.MoodLevel]int, barWidth int) string {
	max := 0
	for _, c := range byLevel {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return StyleDim.Render("No check-ins yet.") + "\n"
	}

	var b strings.Builder
	for _, level := range domain.AllMoodLevels {
		count := byLevel[level]
		filled := count * barWidth / max
		if count > 0 && filled < 1 {
			filled = 1
		}
		b.WriteString(MoodStyle(level).Render(padRight(level.Label(), 12)))
		b.WriteString(MoodStyle(level).Render(strings.Repeat(moodBlock, filled)))
		if count > 0 {
			b.WriteString(StyleDim.Render(" " + strconv.Itoa(count)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
