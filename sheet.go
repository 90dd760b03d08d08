package bottomsheet

import (
	"time"

	"github.com/esimov/bottomsheet/anim"
	"github.com/esimov/bottomsheet/utils"
)

// Sheet is a draggable panel composited over a content panel. It rests
// either collapsed (Initial) or expanded (Full) and follows vertical drag
// gestures in between, snapping to one of the rest states when the gesture ends.
//
// A Sheet must be created with NewSheet and used from the goroutine running
// the window event loop.
type Sheet struct {
	comp     Compositor
	behavior Behavior
	onChange func(from, to State)

	// state is the committed rest state. It only changes when a transition completes.
	state State

	trans       anim.Transition
	transTarget State

	// Gesture tracking.
	dragging  bool
	dragState State   // state governing the running gesture
	origin    float32 // offset magnitude at the start of the gesture
	settled   bool    // the gesture already snapped to the top

	pan        panRecognizer
	now        time.Time
	invalidate bool
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithBehavior overrides the default thresholds and transitions.
func WithBehavior(b Behavior) Option {
	return func(s *Sheet) {
		s.behavior = b
	}
}

// WithStateChange registers a function called each time the sheet
// settles into a different rest state.
func WithStateChange(fn func(from, to State)) Option {
	return func(s *Sheet) {
		s.onChange = fn
	}
}

// NewSheet attaches the content and the sheet panels and returns the sheet
// in the Initial state. It fails with ErrInvalidConfig if cfg is out of range.
func NewSheet(content, panel Renderable, cfg Config, opts ...Option) (*Sheet, error) {
	s := &Sheet{}
	for _, opt := range opts {
		opt(s)
	}
	s.behavior = s.behavior.withDefaults()

	var sheet Renderable
	if panel != nil {
		sheet = &sheetFrame{panel: panel, pan: &s.pan}
	}
	if err := s.comp.Attach(content, sheet, cfg); err != nil {
		return nil, err
	}
	s.state = Initial

	return s, nil
}

// State returns the committed rest state.
func (s *Sheet) State() State { return s.state }

// Offset returns the live sheet offset in Dp.
func (s *Sheet) Offset() float32 { return s.comp.Offset() }

// Config returns the sheet geometry.
func (s *Sheet) Config() Config { return s.comp.Config() }

// Animating reports whether a transition is running.
func (s *Sheet) Animating() bool { return s.trans.Active() }

// Dragging reports whether a drag gesture is in progress.
func (s *Sheet) Dragging() bool { return s.dragging }

// ShowSheet expands the sheet. When animated the state becomes Full once the
// transition completes, otherwise immediately.
func (s *Sheet) ShowSheet(animated bool) {
	s.transitionTo(Full, animated)
}

// HideSheet collapses the sheet. When animated the state becomes Initial once
// the transition completes, otherwise immediately.
func (s *Sheet) HideSheet(animated bool) {
	s.transitionTo(Initial, animated)
}

func (s *Sheet) transitionTo(target State, animated bool) {
	s.mustInit()

	to := s.comp.cfg.offset(target)
	if !animated {
		s.trans.Stop(s.now)
		s.comp.SetOffset(to)
		s.commit(target)
		s.requestLayout()
		return
	}
	// Keep the running transition heading to the same state.
	if s.trans.Active() && s.transTarget == target {
		return
	}

	d, curve := s.behavior.HideDuration, s.behavior.HideCurve
	if target == Full {
		d, curve = s.behavior.ShowDuration, s.behavior.ShowCurve
	}
	s.trans.Start(s.comp.Offset(), to, d, curve)
	s.transTarget = target
	s.requestLayout()
}

// Update advances the running transition to now and reports whether
// further frames are needed to complete it.
func (s *Sheet) Update(now time.Time) bool {
	s.mustInit()

	s.now = now
	if !s.trans.Active() {
		return false
	}
	v, done := s.trans.Value(now)
	s.comp.SetOffset(v)
	if done {
		s.commit(s.transTarget)
		return false
	}
	return true
}

// Drag feeds a gesture sample to the sheet.
func (s *Sheet) Drag(e DragSample) {
	s.mustInit()

	switch {
	case e.Phase == Begin:
		s.beginGesture()
		s.track(e)
	case e.Phase == Change:
		if !s.dragging {
			s.beginGesture()
		}
		s.track(e)
	case e.Phase.terminal():
		if !s.dragging {
			s.beginGesture()
		}
		s.finish(e)
		s.dragging = false
	}
}

// beginGesture captures the gesture origin. An in-flight transition is
// interrupted and its live offset becomes the origin, the gesture is then
// governed by the state the transition was heading to.
func (s *Sheet) beginGesture() {
	s.dragging = true
	s.settled = false
	s.dragState = s.state

	if s.trans.Active() {
		s.comp.SetOffset(s.trans.Stop(s.now))
		s.dragState = s.transTarget
	} else {
		s.comp.SetOffset(s.comp.cfg.offset(s.state))
	}
	s.origin = -s.comp.Offset()
}

// track follows the finger while the gesture is running.
func (s *Sheet) track(e DragSample) {
	if s.settled {
		return
	}
	cfg := s.comp.cfg

	switch s.dragState {
	case Full:
		// Only downward drags are accepted.
		if e.TranslationY <= 0 {
			return
		}
		dist := utils.Min(e.TranslationY, s.origin)
		s.comp.SetOffset(-(s.origin - dist))
		s.requestLayout()
	case Initial:
		// Only upward drags are accepted.
		if e.TranslationY >= 0 {
			return
		}
		candidate := -(s.origin + utils.Abs(e.TranslationY))
		if utils.Abs(candidate) >= cfg.Height {
			s.settled = true
			s.ShowSheet(true)
			return
		}
		s.comp.SetOffset(candidate)
		s.requestLayout()
	}
}

// finish snaps the sheet to one of the rest states.
func (s *Sheet) finish(e DragSample) {
	if s.settled {
		s.ShowSheet(true)
		return
	}
	var (
		half = s.comp.cfg.Height / 2
		vmax = s.behavior.VelocityThreshold
	)

	switch s.dragState {
	case Full:
		dist := utils.Max(e.TranslationY, 0)
		switch {
		case e.VelocityY < 0:
			s.ShowSheet(true)
		case dist >= half || e.VelocityY > vmax:
			s.HideSheet(true)
		default:
			s.ShowSheet(true)
		}
	case Initial:
		dist := utils.Max(-e.TranslationY, 0)
		if dist >= half || e.VelocityY < -vmax {
			s.ShowSheet(true)
		} else {
			s.HideSheet(true)
		}
	}
}

// commit settles the sheet into the target rest state.
func (s *Sheet) commit(target State) {
	if s.state == target {
		return
	}
	from := s.state
	s.state = target
	if s.onChange != nil {
		s.onChange(from, target)
	}
}

func (s *Sheet) requestLayout() {
	s.invalidate = true
}

func (s *Sheet) mustInit() {
	if !s.comp.attached {
		panic("bottomsheet: Sheet used without NewSheet")
	}
}

// UnmarshalJSON always fails, a sheet cannot be restored from serialized state.
func (s *Sheet) UnmarshalJSON([]byte) error { return ErrRestoreUnsupported }

// UnmarshalText always fails, a sheet cannot be restored from serialized state.
func (s *Sheet) UnmarshalText([]byte) error { return ErrRestoreUnsupported }
