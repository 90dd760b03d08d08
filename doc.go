/*
Package bottomsheet implements an interactive bottom sheet widget for Gio: a
panel composited over a content view, which can be dragged between a collapsed
(Initial) and an expanded (Full) position. Vertical drags move the sheet under
the finger, releasing it snaps the sheet to one of the rest positions based on
the distance travelled and the speed of the gesture.

The sheet is driven by the frame loop of the Gio window:

	package main

	import (
		"log"

		"gioui.org/app"
		"gioui.org/io/system"
		"gioui.org/layout"
		"gioui.org/op"
		"github.com/esimov/bottomsheet"
	)

	func main() {
		sheet, err := bottomsheet.NewSheet(content, panel, bottomsheet.Config{
			Height:        600,
			InitialOffset: 80,
		})
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			w := app.NewWindow()
			var ops op.Ops
			for e := range w.Events() {
				if e, ok := e.(system.FrameEvent); ok {
					gtx := layout.NewContext(&ops, e)
					sheet.Layout(gtx)
					e.Frame(gtx.Ops)
				}
			}
		}()
		app.Main()
	}

The sheet can also be moved programmatically with ShowSheet and HideSheet.
*/
package bottomsheet
