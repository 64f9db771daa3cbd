package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#F59E0B")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Amber).
			Padding(0, 1)
)

// List row styles
var (
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true).
			Padding(0, 1)
)

// Detail sheet styles
var (
	SheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(1, 2)

	SheetLabelStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Width(14)

	SheetValueStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Amber)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + spaces(width-len(r))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
