package theme

import "github.com/thenoetrevino/pipeline/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	DropTarget     string
	Badge          string
	SelectedBorder string
	SelectedBg     string
	CardBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	DropTarget = colors.DropTarget
	Badge = colors.Badge
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	CardBg = colors.CardBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
