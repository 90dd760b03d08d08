package bottomsheet

import (
	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// recognizeSimultaneously is the policy for sharing the pointer with the
// panels: the sheet never grabs the pointer, so gestures of the sheet panel
// (scrolling lists, buttons) keep receiving events while it is dragged.
const recognizeSimultaneously = true

// Layout processes the pointer events of the sheet, advances the running
// transition to the frame time and draws the content and the sheet.
func (s *Sheet) Layout(gtx C) D {
	s.mustInit()

	s.now = gtx.Now
	for _, e := range s.pan.Events(gtx) {
		s.Drag(e)
	}
	animating := s.Update(gtx.Now)
	dims := s.comp.Layout(gtx)

	if animating || s.invalidate {
		op.InvalidateOp{}.Add(gtx.Ops)
		s.invalidate = false
	}
	return dims
}

// sheetFrame wraps the sheet panel with the input area of the drag gesture.
type sheetFrame struct {
	panel Renderable
	pan   *panRecognizer
}

func (f *sheetFrame) Layout(gtx C) D {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	f.pan.Add(gtx.Ops)

	return f.panel.Layout(gtx)
}

// Attached forwards the lifecycle hook to the wrapped panel.
func (f *sheetFrame) Attached() {
	if a, ok := f.panel.(Attacher); ok {
		a.Attached()
	}
}

// panRecognizer converts the pointer events of the sheet area into drag
// samples. Translations are measured from the press position and expressed in Dp.
type panRecognizer struct {
	active   bool
	pid      pointer.ID
	start    f32.Point
	last     float32
	velocity velocityTracker
}

// Add registers the recognizer for the pointer events of the current clip area.
func (p *panRecognizer) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   p,
		Grab:  !recognizeSimultaneously,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(ops)
}

// Events returns the drag samples of the pending pointer events.
func (p *panRecognizer) Events(gtx C) []DragSample {
	var (
		samples []DragSample
		scale   = pxPerDp(gtx.Metric)
	)
	for _, ev := range gtx.Events(p) {
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			if p.active {
				continue
			}
			p.active = true
			p.pid = e.PointerID
			p.start = e.Position
			p.last = 0
			p.velocity.reset()
			p.velocity.add(e.Time, 0)
			samples = append(samples, DragSample{Phase: Begin})
		case pointer.Drag:
			if !p.active || e.PointerID != p.pid {
				continue
			}
			p.last = (e.Position.Y - p.start.Y) / scale
			p.velocity.add(e.Time, p.last)
			samples = append(samples, DragSample{
				TranslationY: p.last,
				VelocityY:    p.velocity.estimate(),
				Phase:        Change,
			})
		case pointer.Release, pointer.Cancel:
			if !p.active || (e.Type == pointer.Release && e.PointerID != p.pid) {
				continue
			}
			p.active = false

			// Cancel events carry neither pointer nor position, the last known translation is used instead.
			phase := Cancel
			if e.Type == pointer.Release {
				phase = End
				p.last = (e.Position.Y - p.start.Y) / scale
				p.velocity.add(e.Time, p.last)
			}
			samples = append(samples, DragSample{
				TranslationY: p.last,
				VelocityY:    p.velocity.estimate(),
				Phase:        phase,
			})
		}
	}
	return samples
}
