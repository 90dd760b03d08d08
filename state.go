package bottomsheet

import "fmt"

// State is the rest position of the sheet.
type State uint8

const (
	// Initial is the collapsed state, the sheet peeks above the bottom edge.
	Initial State = iota
	// Full is the expanded state.
	Full
)

func (s State) String() string {
	switch s {
	case Initial:
		return "Initial"
	case Full:
		return "Full"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Phase is the phase of a drag gesture.
type Phase uint8

const (
	Begin Phase = iota
	Change
	End
	Cancel
	Failed
)

func (p Phase) String() string {
	switch p {
	case Begin:
		return "Begin"
	case Change:
		return "Change"
	case End:
		return "End"
	case Cancel:
		return "Cancel"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// terminal reports whether the phase ends the gesture.
func (p Phase) terminal() bool {
	return p == End || p == Cancel || p == Failed
}

// DragSample is a single gesture update. Translation is relative to the
// point where the gesture began, both values are in Dp (per second for
// the velocity), positive downwards.
type DragSample struct {
	TranslationY float32
	VelocityY    float32
	Phase        Phase
}
