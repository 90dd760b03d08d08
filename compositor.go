package bottomsheet

import (
	"errors"
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/esimov/bottomsheet/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Renderable is a panel hosted by the sheet container. The container makes
// no assumption about its internals other than it can lay itself out
// within the constraints it receives.
type Renderable interface {
	Layout(gtx C) D
}

// Attacher is implemented by the panels which need to be notified when they
// are attached to the container.
type Attacher interface {
	Attached()
}

// RenderFunc adapts a layout.Widget to the Renderable interface.
type RenderFunc layout.Widget

// Layout implements Renderable.
func (f RenderFunc) Layout(gtx C) D { return f(gtx) }

// Compositor places the content and the sheet panels inside the container.
// The content fills the container, the sheet has the width of the container,
// the configured height and its top edge at Offset Dp from the container's
// bottom edge.
type Compositor struct {
	content  Renderable
	sheet    Renderable
	cfg      Config
	offset   float32
	attached bool
}

// Attach inserts the panels into the container and moves the sheet to its
// initial offset. It can be called only once.
func (c *Compositor) Attach(content, sheet Renderable, cfg Config) error {
	if c.attached {
		return ErrAlreadyAttached
	}
	if content == nil || sheet == nil {
		return errors.New("bottomsheet: content and sheet panels are required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.content, c.sheet, c.cfg = content, sheet, cfg
	c.offset = -cfg.InitialOffset
	c.attached = true

	for _, r := range []Renderable{content, sheet} {
		if a, ok := r.(Attacher); ok {
			a.Attached()
		}
	}
	return nil
}

// Config returns the configuration the panels were attached with.
func (c *Compositor) Config() Config { return c.cfg }

// Offset returns the current sheet offset in Dp.
func (c *Compositor) Offset() float32 { return c.offset }

// SetOffset updates the sheet offset. Values outside of the sheet travel are
// clamped to [-Height, 0]. It does not redraw anything, the change becomes
// visible on the next layout pass.
func (c *Compositor) SetOffset(v float32) {
	if math.IsNaN(float64(v)) {
		return
	}
	c.offset = utils.Clamp(v, -c.cfg.Height, 0)
}

// SheetBounds returns the sheet rectangle, in pixels, inside a container of the given size.
func (c *Compositor) SheetBounds(container image.Point, m unit.Metric) image.Rectangle {
	scale := pxPerDp(m)
	h := int(math.Round(float64(c.cfg.Height * scale)))
	top := container.Y + int(math.Round(float64(c.offset*scale)))

	return image.Rect(0, top, container.X, top+h)
}

// Layout draws the content and the sheet at the current offset.
func (c *Compositor) Layout(gtx C) D {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	cgtx := gtx
	cgtx.Constraints = layout.Exact(size)
	c.content.Layout(cgtx)

	r := c.SheetBounds(size, gtx.Metric)
	trans := op.Offset(r.Min).Push(gtx.Ops)
	sgtx := gtx
	sgtx.Constraints = layout.Exact(r.Size())
	c.sheet.Layout(sgtx)
	trans.Pop()

	return D{Size: size}
}

// pxPerDp returns the pixel scale of m. The zero Metric maps 1 Dp to 1 pixel.
func pxPerDp(m unit.Metric) float32 {
	if m.PxPerDp <= 0 {
		return 1
	}
	return m.PxPerDp
}
