package notifications

import "github.com/thenoetrevino/pipeline/internal/tui/state"

// Severity picks the icon and colors of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// SeverityOf maps a notification level to its display severity
func SeverityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
