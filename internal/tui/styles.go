package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordlens/internal/model"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	chipBg lipgloss.Color
	good   lipgloss.Color
	danger lipgloss.Color
}

var (
	darkPalette = palette{
		text:   lipgloss.Color("#F0F0F0"),
		muted:  lipgloss.Color("#8C8C8C"),
		accent: lipgloss.Color("#C89A3A"),
		border: lipgloss.Color("#4A4A4A"),
		chipBg: lipgloss.Color("#2E2E2E"),
		good:   lipgloss.Color("#52C41A"),
		danger: lipgloss.Color("#FF4D4F"),
	}
	lightPalette = palette{
		text:   lipgloss.Color("#1F1F1F"),
		muted:  lipgloss.Color("#6E6E6E"),
		accent: lipgloss.Color("#9A6B00"),
		border: lipgloss.Color("#BFBFBF"),
		chipBg: lipgloss.Color("#E8E8E8"),
		good:   lipgloss.Color("#237804"),
		danger: lipgloss.Color("#CF1322"),
	}
)

type styles struct {
	text       lipgloss.Style
	title      lipgloss.Style
	muted      lipgloss.Style
	card       lipgloss.Style
	cardValue  lipgloss.Style
	chip       lipgloss.Style
	notice     lipgloss.Style
	errNotice  lipgloss.Style
	barStarted lipgloss.Style
	barNear    lipgloss.Style
	barDone    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p := darkPalette
	if theme == model.ThemeLight {
		p = lightPalette
	}
	return styles{
		text:       lipgloss.NewStyle().Foreground(p.text),
		title:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(p.muted),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		cardValue:  lipgloss.NewStyle().Foreground(p.text).Bold(true),
		chip:       lipgloss.NewStyle().Foreground(p.text).Background(p.chipBg).Padding(0, 1),
		notice:     lipgloss.NewStyle().Foreground(p.good),
		errNotice:  lipgloss.NewStyle().Foreground(p.danger),
		barStarted: lipgloss.NewStyle().Foreground(p.accent),
		barNear:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16")),
		barDone:    lipgloss.NewStyle().Foreground(p.good),
		barEmpty:   lipgloss.NewStyle().Foreground(p.border),
	}
}

func (s styles) bar(level model.GoalLevel) lipgloss.Style {
	switch level {
	case model.GoalDone:
		return s.barDone
	case model.GoalNear:
		return s.barNear
	default:
		return s.barStarted
	}
}
