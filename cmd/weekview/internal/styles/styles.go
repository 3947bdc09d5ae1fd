package styles

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	ColorFg      = lipgloss.Color("#24292f") // primary foreground
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // error red
	ColorSuccess = lipgloss.Color("#1a7f37") // success green
	ColorWarning = lipgloss.Color("#9a6700") // warning amber
	ColorMagenta = lipgloss.Color("#8250df") // purple/magenta
)

// Centralized style definitions for the TUI.
var (
	// Header / chrome.
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	DayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorMuted)
	TodayStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	HintStyle      = lipgloss.NewStyle().Foreground(ColorMuted)

	// Grid cells.
	GutterStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	GridLineStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	SelectionStyle = lipgloss.NewStyle().Background(ColorAccent).Foreground(lipgloss.Color("#ffffff"))
	BusyStyle      = lipgloss.NewStyle().Foreground(ColorMuted)

	// Dialogs.
	DialogBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)
	DialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	DetailBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorWarning).Padding(0, 1)

	// General utility styles.
	DimStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// Event block styles keyed by the event's color hint; empty or unknown
// hints fall back to the accent block.
var (
	eventBlocks = map[string]lipgloss.Style{
		"blue":   lipgloss.NewStyle().Background(ColorAccent).Foreground(lipgloss.Color("#ffffff")),
		"green":  lipgloss.NewStyle().Background(ColorSuccess).Foreground(lipgloss.Color("#ffffff")),
		"red":    lipgloss.NewStyle().Background(ColorError).Foreground(lipgloss.Color("#ffffff")),
		"amber":  lipgloss.NewStyle().Background(ColorWarning).Foreground(lipgloss.Color("#ffffff")),
		"purple": lipgloss.NewStyle().Background(ColorMagenta).Foreground(lipgloss.Color("#ffffff")),
	}

	defaultEventBlock = eventBlocks["blue"]
)

// EventBlock returns the block style for a color hint.
func EventBlock(color string) lipgloss.Style {
	if s, ok := eventBlocks[color]; ok {
		return s
	}
	return defaultEventBlock
}

// EventColors lists the color hints EventBlock understands, in a stable
// order for pickers.
func EventColors() []string {
	return []string{"blue", "green", "red", "amber", "purple"}
}
