package bottomsheet

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queue is an event.Queue delivering the queued events once.
type queue map[event.Tag][]event.Event

func (q queue) Events(t event.Tag) []event.Event {
	evs := q[t]
	delete(q, t)
	return evs
}

func frame(q event.Queue, now time.Time) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(400, 800)),
		Queue:       q,
		Now:         now,
	}
}

func touch(typ pointer.Type, y float32, t time.Duration) event.Event {
	return pointer.Event{
		Type:      typ,
		Source:    pointer.Touch,
		PointerID: 1,
		Position:  f32.Pt(200, y),
		Time:      t,
	}
}

func TestWidget_DragAndFlick(t *testing.T) {
	content, sheetPanel := &panel{}, &panel{}
	s, err := NewSheet(content, sheetPanel, testConfig)
	require.NoError(t, err)

	q := queue{}
	s.Layout(frame(q, epoch))
	assert.Equal(t, 1, content.layouts)
	assert.Equal(t, 1, sheetPanel.layouts)

	// Slow drag upwards: the sheet follows the finger.
	q[&s.pan] = []event.Event{
		touch(pointer.Press, 750, 0),
		touch(pointer.Drag, 700, 100*time.Millisecond),
		touch(pointer.Drag, 650, 200*time.Millisecond),
	}
	s.Layout(frame(q, epoch.Add(16*time.Millisecond)))
	assert.True(t, s.Dragging())
	assert.Equal(t, float32(-180), s.Offset())
	assert.Equal(t, Initial, s.State())

	// Fast flick upwards before release: 20 Dp every 10ms.
	q[&s.pan] = []event.Event{
		touch(pointer.Drag, 630, 210*time.Millisecond),
		touch(pointer.Drag, 610, 220*time.Millisecond),
		touch(pointer.Drag, 590, 230*time.Millisecond),
		touch(pointer.Release, 570, 240*time.Millisecond),
	}
	now := epoch.Add(32 * time.Millisecond)
	s.Layout(frame(q, now))
	assert.False(t, s.Dragging())
	assert.True(t, s.Animating())
	assert.Equal(t, Initial, s.State())

	for i := 0; i < 20 && s.Animating(); i++ {
		now = now.Add(16 * time.Millisecond)
		s.Layout(frame(q, now))
	}
	assert.Equal(t, Full, s.State())
	assert.Equal(t, float32(-500), s.Offset())
}

func TestWidget_CancelSnapsBack(t *testing.T) {
	s, err := NewSheet(&panel{}, &panel{}, testConfig)
	require.NoError(t, err)

	q := queue{&s.pan: []event.Event{
		touch(pointer.Press, 750, 0),
		touch(pointer.Drag, 700, 100*time.Millisecond),
		pointer.Event{Type: pointer.Cancel},
	}}
	now := epoch
	s.Layout(frame(q, now))
	assert.False(t, s.Dragging())

	for i := 0; i < 30 && s.Animating(); i++ {
		now = now.Add(16 * time.Millisecond)
		s.Layout(frame(q, now))
	}
	assert.Equal(t, Initial, s.State())
	assert.Equal(t, float32(-80), s.Offset())
}

func TestWidget_IgnoresSecondaryButtons(t *testing.T) {
	s, err := NewSheet(&panel{}, &panel{}, testConfig)
	require.NoError(t, err)

	q := queue{&s.pan: []event.Event{
		pointer.Event{Type: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary, Position: f32.Pt(10, 750)},
		pointer.Event{Type: pointer.Drag, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary, Position: f32.Pt(10, 500)},
	}}
	s.Layout(frame(q, epoch))

	assert.False(t, s.Dragging())
	assert.Equal(t, float32(-80), s.Offset())
}

func TestWidget_ScaledMetric(t *testing.T) {
	s, err := NewSheet(&panel{}, &panel{}, testConfig)
	require.NoError(t, err)

	gtx := frame(queue{&s.pan: []event.Event{
		touch(pointer.Press, 1500, 0),
		touch(pointer.Drag, 1400, 100*time.Millisecond),
	}}, epoch)
	gtx.Metric.PxPerDp = 2
	gtx.Constraints = layout.Exact(image.Pt(800, 1600))
	s.Layout(gtx)

	// 100 pixels at 2 pixels per Dp.
	assert.Equal(t, float32(-130), s.Offset())
}
