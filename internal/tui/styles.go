package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/poker"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	StrengthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// categoryColors runs from gold for the rarest hands down to grey.
var categoryColors = [poker.NumCategories]lipgloss.Color{
	poker.RoyalFlush:    "#FFD700",
	poker.StraightFlush: "#FFB347",
	poker.FourOfAKind:   "#FF8C69",
	poker.FullHouse:     "#DDA0DD",
	poker.Flush:         "#87CEEB",
	poker.Straight:      "#7FDBFF",
	poker.ThreeOfAKind:  "#96CEB4",
	poker.TwoPair:       "#B8E994",
	poker.OnePair:       "#D3D3D3",
	poker.HighCard:      "#A0A0A0",
}

// CategoryStyle returns the style used to render a category name.
func CategoryStyle(c poker.Category) lipgloss.Style {
	if int(c) >= poker.NumCategories {
		return InfoStyle
	}
	return lipgloss.NewStyle().Foreground(categoryColors[c]).Bold(c <= poker.FourOfAKind)
}

// SetColor switches styled output on or off for the whole process.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
