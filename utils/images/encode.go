package images

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// Encode writes img in requested format. JPEG has no alpha channel, so image
// is flattened onto white background first.
func Encode(w io.Writer, img image.Image, format imaging.Format, quality int) error {
	switch format {
	case imaging.PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case imaging.JPEG:
		return imaging.Encode(w, Flatten(img, color.White), imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		return fmt.Errorf("unsupported thumbnail format %s", format)
	}
}

// Save writes img to file, format is selected by file extension.
func Save(img image.Image, path string, quality int) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unable to select format for %s: %w", path, err)
	}
	if format == imaging.JPEG {
		img = Flatten(img, color.White)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("unable to save %s: %w", path, err)
	}
	return nil
}

// Flatten composes img over solid background.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	return imaging.Overlay(imaging.New(b.Dx(), b.Dy(), bg), img, image.Point{}, 1)
}
