package alerts

import "fmt"

// Level is the severity of an alert.
type Level int

const (
	// LevelError marks a failed operation.
	LevelError Level = iota
	// LevelWarning marks a run that finished with issues worth a look.
	LevelWarning
	// LevelInfo marks a plain notice.
	LevelInfo
	// LevelSuccess marks a completed operation.
	LevelSuccess
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the single-character marker printed before a message.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return "✗"
	case LevelWarning:
		return "!"
	case LevelInfo:
		return "i"
	case LevelSuccess:
		return "✓"
	default:
		return "?"
	}
}

// Color returns the ANSI color escape for the level.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "\033[31m"
	case LevelWarning:
		return "\033[33m"
	case LevelInfo:
		return "\033[36m"
	case LevelSuccess:
		return "\033[32m"
	default:
		return ""
	}
}

const resetColor = "\033[0m"
