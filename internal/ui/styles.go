package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	filterBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeFilterStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	itemTitleStyle = lipgloss.NewStyle().
			Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 2)

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 0, 0, 1)
)

// categoryColors maps the palette tokens stored on Category records to
// terminal colors. Unknown tokens fall back to the default foreground.
var categoryColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("39"),
	"purple": lipgloss.Color("135"),
	"pink":   lipgloss.Color("212"),
	"green":  lipgloss.Color("42"),
	"orange": lipgloss.Color("214"),
}

func categoryStyle(color string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := categoryColors[color]; ok {
		style = style.Foreground(c)
	}
	return style
}
