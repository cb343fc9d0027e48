package cell

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

var (
	errEmpty     = errors.New("cell: image is empty")
	errBadColors = errors.New("cell: colors must be between 0 and 256")
)

func reduceColors(m image.Image, n int) *image.Paletted {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok {
			pm = image.NewPaletted(b, cp)
			draw.Draw(pm, b, m, b.Min, draw.Src)
		}
	}

	if pm == nil || len(pm.Palette) > n {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return pm
}

// rebase moves the origin of m to (0, 0) without converting the pixels.
// Offsets into Pix are relative to Rect.Min so only the rectangle changes.
// Types with subsampled or otherwise offset-dependent layouts are copied to
// NRGBA instead.
func rebase(m image.Image) image.Image {
	switch m := m.(type) {
	case *image.Paletted:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.Gray:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.Gray16:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.RGBA:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.RGBA64:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.NRGBA:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	case *image.NRGBA64:
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		return &dup
	default:
		return imaging.Clone(m)
	}
}

// Encode writes the Image m to w in PNG format.
func Encode(w io.Writer, m image.Image, opts ...Option) error {
	o := options{
		level: png.DefaultCompression,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.colors < 0 || o.colors > maxColors {
		return errBadColors
	}

	b := m.Bounds()
	if b.Empty() {
		return errEmpty
	}

	if o.colors > 0 {
		m = reduceColors(m, o.colors)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if b.Min != (image.Point{}) {
		m = rebase(m)
	}

	return imaging.Encode(w, m, imaging.PNG, imaging.PNGCompressionLevel(o.level))
}
