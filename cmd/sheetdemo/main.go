package main

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/spf13/cobra"

	"github.com/esimov/bottomsheet"
	"github.com/esimov/bottomsheet/internal/config"
	"github.com/esimov/bottomsheet/utils"
)

const helpBanner = `
Interactive bottom sheet demo.
    Version: %s
`

// Version indicates the current build version.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "sheetdemo",
	Short:         "Interactive bottom sheet demo",
	Long:          fmt.Sprintf(helpBanner, Version),
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/sheetdemo/config.{toml,yaml,json})")
	f.String("title", "Bottom sheet", "Window title")
	f.Float32("width", 420, "Window width in Dp")
	f.Float32("window-height", 820, "Window height in Dp")
	f.Float32("height-ratio", 0.8, "Expanded sheet height relative to the window height")
	f.Float32("initial-offset", 60, "Visible height of the collapsed sheet in Dp")
	f.Float32("velocity-threshold", bottomsheet.DefaultVelocityThreshold, "Flick speed in Dp/s committing a gesture")
	f.String("sheet-color", "#ffffff", "Sheet background color")
	f.Bool("expanded", false, "Start with the sheet expanded")
	f.String("background", "", "Background image path or URL")
	f.Float64("blur", 0, "Background blur sigma")
	f.String("background-color", "#0f8b8d", "Background color used without an image")
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("✘ SHEETDEMO", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

// run loads the configuration, builds the interface and hands the main
// goroutine over to Gio. The window loop runs on its own goroutine.
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	bg, err := loadBackground(cfg.Background, cfg.Window)
	if err != nil {
		return err
	}

	ui, err := newUI(cfg, bg)
	if err != nil {
		return err
	}

	go func() {
		w := app.NewWindow(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		if err := ui.loop(w); err != nil {
			log.Fatalf("%s %s",
				utils.DecorateText("✘ SHEETDEMO", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		os.Exit(0)
	}()
	app.Main()

	return nil
}

// UI holds the widgets of the demo.
type UI struct {
	theme   *material.Theme
	sheet   *bottomsheet.Sheet
	content *contentPanel
	panel   *sheetPanel
}

func newUI(cfg config.Config, bg *background) (*UI, error) {
	th := material.NewTheme(gofont.Collection())

	sheetColor, err := utils.HexToRGBA(cfg.Sheet.Color)
	if err != nil {
		return nil, err
	}

	ui := &UI{
		theme:   th,
		content: newContentPanel(th, bg, cfg.Window.Title),
		panel:   newSheetPanel(th, sheetColor),
	}

	ui.sheet, err = bottomsheet.NewSheet(ui.content, ui.panel, cfg.SheetConfig(0),
		bottomsheet.WithBehavior(cfg.Behavior()),
		bottomsheet.WithStateChange(func(from, to bottomsheet.State) {
			log.Printf("%s %s",
				utils.DecorateText("⇢ SHEETDEMO", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("sheet state changed: %s → %s", from, to), utils.SuccessMessage),
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	ui.panel.sheet = ui.sheet

	if cfg.Sheet.Expanded {
		ui.sheet.ShowSheet(false)
	}
	return ui, nil
}

// loop runs the window event loop until the window is closed.
func (ui *UI) loop(w *app.Window) error {
	var ops op.Ops

	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

// Layout draws the content and the sheet.
func (ui *UI) Layout(gtx layout.Context) layout.Dimensions {
	return ui.sheet.Layout(gtx)
}
