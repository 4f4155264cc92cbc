package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhelan/solace/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MoodStyle returns the lipgloss style corresponding to a mood level.
func MoodStyle(level domain.MoodLevel) lipgloss.Style {
	switch level {
	case domain.MoodGreat, domain.MoodGood:
		return StyleGreen
	case domain.MoodOkay:
		return StyleYellow
	case domain.MoodLow:
		return StylePurple
	case domain.MoodTerrible:
		return StyleRed
	default:
		return StyleDim
	}
}

// MoodPill returns a colored mood indicator such as "😊 Great".
func MoodPill(level domain.MoodLevel) string {
	return MoodStyle(level).Render(level.Emoji() + " " + level.Label())
}

// TrendIndicator returns a colored arrow for a mood trend direction.
func TrendIndicator(trend string) string {
	switch trend {
	case "improving":
		return StyleGreen.Render("↑ Improving")
	case "declining":
		return StyleRed.Render("↓ Declining")
	default:
		return StyleYellow.Render("→ Steady")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
