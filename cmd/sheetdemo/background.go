package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"gioui.org/op/paint"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/esimov/bottomsheet/internal/config"
	"github.com/esimov/bottomsheet/utils"
)

// maxPxPerDp bounds the resolution of the background image relative to the window size.
const maxPxPerDp = 3

// background is the backdrop of the content panel.
type background struct {
	color color.NRGBA
	img   image.Image
	src   paint.ImageOp
}

// loadBackground decodes the background image from a local path or an URL,
// downscales it to the window resolution and applies the optional blur.
func loadBackground(bc config.BackgroundConfig, wc config.WindowConfig) (*background, error) {
	col, err := utils.HexToRGBA(bc.Color)
	if err != nil {
		return nil, err
	}
	bg := &background{color: col}
	if bc.Source == "" {
		return bg, nil
	}

	var file *os.File
	if utils.IsValidUrl(bc.Source) {
		file, err = utils.DownloadImage(bc.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to load the background image: %w", err)
		}
		defer os.Remove(file.Name())
	} else {
		ctype, err := utils.DetectContentType(bc.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to load the background image: %w", err)
		}
		if !strings.Contains(ctype, "image") {
			return nil, fmt.Errorf("the background should be an image file, got %s", ctype)
		}
		if file, err = os.Open(bc.Source); err != nil {
			return nil, fmt.Errorf("failed to load the background image: %w", err)
		}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the background image: %w", err)
	}

	maxW := int(wc.Width * maxPxPerDp)
	maxH := int(wc.Height * maxPxPerDp)
	if b := img.Bounds(); b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}
	if bc.Blur > 0 {
		img = imaging.Blur(img, bc.Blur)
	}

	bg.img = img
	bg.src = paint.NewImageOp(img)

	return bg, nil
}
