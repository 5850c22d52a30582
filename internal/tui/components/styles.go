// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of pipeline stage columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of candidate cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary card text and placeholders
	SubtleStyle lipgloss.Style

	// BadgeStyle renders initials and count badges
	BadgeStyle lipgloss.Style

	// CountStyle renders the per-column count
	CountStyle lipgloss.Style

	// CreateBoxStyle defines the base style for the add-candidate dialog (green border)
	CreateBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// MenuBoxStyle defines the card action menu
	MenuBoxStyle lipgloss.Style

	// DetailBoxStyle defines the candidate detail layer
	DetailBoxStyle lipgloss.Style

	// WarningStyle renders validation messages inside dialogs
	WarningStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusBarSearchStyle defines the style for the search section in the status bar
	StatusBarSearchStyle lipgloss.Style

	// ButtonStyle and ActiveButtonStyle render dialog affordances
	ButtonStyle       lipgloss.Style
	ActiveButtonStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	// Columns and cards are sized by padding their content, see column.go
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBackground)).
		Background(lipgloss.Color(colors.CardBackground)).
		PaddingLeft(1).
		PaddingRight(1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	BadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Background)).
		Background(lipgloss.Color(colors.Badge)).
		Padding(0, 1)

	CountStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Badge))

	// Dialog box styles
	CreateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.WarningFg)).
		Bold(true)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	StatusBarSearchStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.Background))

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 2)

	ActiveButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Background)).
		Background(lipgloss.Color(colors.Delete)).
		Padding(0, 2)
}
