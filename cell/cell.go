/*
Package cell encodes a single grid cell as a PNG image.

By default the pixels are written unchanged. The number of colors can
optionally be reduced, in which case the cell is written as a paletted PNG
using a median cut palette.
*/
package cell

import (
	"fmt"
	"image/png"
)

// Ext is the filename extension for an encoded cell.
const Ext = ".png"

const maxColors = 256

type options struct {
	colors int
	level  png.CompressionLevel
}

// Option configures how a cell is encoded.
type Option func(*options)

// Colors limits the cell to at most n colors. Zero disables reduction.
func Colors(n int) Option {
	return func(o *options) {
		o.colors = n
	}
}

// CompressionLevel sets the deflate level used for the PNG image data.
func CompressionLevel(level png.CompressionLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

var compressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

// ParseCompressionLevel maps one of "default", "none", "speed" or "best" to
// the matching PNG compression level.
func ParseCompressionLevel(s string) (png.CompressionLevel, error) {
	level, ok := compressionLevels[s]
	if !ok {
		return png.DefaultCompression, fmt.Errorf("cell: unknown compression level %q", s)
	}
	return level, nil
}

// ValidCompressionLevel reports whether level is one of the PNG compression
// levels.
func ValidCompressionLevel(level png.CompressionLevel) bool {
	for _, l := range compressionLevels {
		if l == level {
			return true
		}
	}
	return false
}
