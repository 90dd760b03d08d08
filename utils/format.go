package utils

import (
	"os"

	"golang.org/x/term"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the demo application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used accross the demo application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// ColorOutput reports whether the messages should be decorated.
// It is true when the standard error is attached to a terminal.
var ColorOutput = term.IsTerminal(int(os.Stderr.Fd()))

// DecorateText shows the message types in different colors.
// The message is returned unchanged in case the colored output is disabled.
func DecorateText(s string, msgType MessageType) string {
	if !ColorOutput {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}
