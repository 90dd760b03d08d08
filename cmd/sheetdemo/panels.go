package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/esimov/bottomsheet"
	"github.com/esimov/bottomsheet/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	titleColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	handleColor = color.NRGBA{R: 0xc7, G: 0xc7, B: 0xcc, A: 0xff}
	mutedColor  = color.NRGBA{R: 0x6e, G: 0x6e, B: 0x73, A: 0xff}
)

// contentPanel fills the window behind the sheet.
type contentPanel struct {
	th    *material.Theme
	bg    *background
	title string
}

func newContentPanel(th *material.Theme, bg *background, title string) *contentPanel {
	return &contentPanel{th: th, bg: bg, title: title}
}

func (p *contentPanel) Attached() {
	log.Printf("%s %s",
		utils.DecorateText("⇢ SHEETDEMO", utils.StatusMessage),
		utils.DecorateText("content panel attached", utils.DefaultMessage),
	)
}

func (p *contentPanel) Layout(gtx C) D {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, p.bg.color, clip.Rect{Max: size}.Op())

	if p.bg.img != nil {
		scale := gtx.Metric.PxPerDp
		if scale <= 0 {
			scale = 1
		}
		widget.Image{
			Src:      p.bg.src,
			Fit:      widget.Cover,
			Position: layout.Center,
			Scale:    1 / scale,
		}.Layout(gtx)
	}

	layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx C) D {
		lbl := material.H4(p.th, p.title)
		lbl.Color = titleColor
		return lbl.Layout(gtx)
	})
	return D{Size: size}
}

// sheetPanel is the white panel with rounded top corners hosted by the sheet.
type sheetPanel struct {
	th     *material.Theme
	color  color.NRGBA
	sheet  *bottomsheet.Sheet
	toggle widget.Clickable
}

func newSheetPanel(th *material.Theme, col color.NRGBA) *sheetPanel {
	return &sheetPanel{th: th, color: col}
}

func (p *sheetPanel) Attached() {
	log.Printf("%s %s",
		utils.DecorateText("⇢ SHEETDEMO", utils.StatusMessage),
		utils.DecorateText("sheet panel attached", utils.DefaultMessage),
	)
}

func (p *sheetPanel) Layout(gtx C) D {
	for p.toggle.Clicked() {
		if p.sheet.State() == bottomsheet.Full {
			p.sheet.HideSheet(true)
		} else {
			p.sheet.ShowSheet(true)
		}
	}

	size := gtx.Constraints.Max
	radius := gtx.Dp(unit.Dp(20))
	rr := clip.RRect{Rect: image.Rectangle{Max: size}, NW: radius, NE: radius}
	paint.FillShape(gtx.Ops, p.color, rr.Op(gtx.Ops))

	label := "Expand"
	if p.sheet.State() == bottomsheet.Full {
		label = "Collapse"
	}

	rows := []layout.FlexChild{
		layout.Rigid(p.layoutHandle),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, material.H6(p.th, "Drag me").Layout)
		}),
		layout.Rigid(func(gtx C) D {
			lbl := material.Body2(p.th, fmt.Sprintf("State: %s", p.sheet.State()))
			lbl.Color = mutedColor
			return layout.Inset{Bottom: unit.Dp(16)}.Layout(gtx, lbl.Layout)
		}),
		layout.Rigid(material.Button(p.th, &p.toggle, label).Layout),
	}
	for i := 1; i <= 5; i++ {
		text := fmt.Sprintf("Item %d", i)
		rows = append(rows, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, material.Body1(p.th, text).Layout)
		}))
	}

	gtx.Constraints.Min = image.Point{}
	layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
	}.Layout(gtx, rows...)

	return D{Size: size}
}

// layoutHandle draws the grab handle at the top of the sheet.
func (p *sheetPanel) layoutHandle(gtx C) D {
	return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(12)}.Layout(gtx, func(gtx C) D {
		sz := image.Pt(gtx.Dp(unit.Dp(36)), gtx.Dp(unit.Dp(5)))
		paint.FillShape(gtx.Ops, handleColor, clip.UniformRRect(image.Rectangle{Max: sz}, sz.Y/2).Op(gtx.Ops))
		return D{Size: sz}
	})
}
