package gridcut

import (
	"errors"
	"image/png"

	"github.com/bodgit/gridcut/archive"
	"github.com/bodgit/gridcut/cell"
	"github.com/bodgit/gridcut/grid"
)

// Defaults matching the lulu sticker sheet the tool was first written for.
const (
	DefaultInput     = "pictures/lulu.jpg"
	DefaultOutputDir = "pictures/lulu_piggy_slices/"
	DefaultArchive   = "lulu_piggy_icons.zip"
	DefaultPrefix    = "lulu"
	DefaultRows      = 4
	DefaultCols      = 3
)

// Config controls a single run of the pipeline.
type Config struct {
	Input     string // source image
	OutputDir string // created if missing
	Archive   string // written last
	Prefix    string // cell filenames are <Prefix>_NN.png
	Grid      grid.Grid

	// Colors limits each cell to a palette of this many colors, zero keeps
	// every pixel as decoded
	Colors int

	// PNGCompression is the deflate level used inside each PNG
	PNGCompression png.CompressionLevel

	// ArchiveCompression is the flate level used for archive entries
	ArchiveCompression int

	// Verify re-reads the archive and compares each entry with its file
	Verify bool
}

// DefaultConfig returns the configuration of the original sticker sheet run.
func DefaultConfig() Config {
	return Config{
		Input:              DefaultInput,
		OutputDir:          DefaultOutputDir,
		Archive:            DefaultArchive,
		Prefix:             DefaultPrefix,
		Grid:               grid.Grid{Rows: DefaultRows, Cols: DefaultCols},
		PNGCompression:     png.DefaultCompression,
		ArchiveCompression: archive.DefaultCompression,
	}
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("no input image")
	case c.OutputDir == "":
		return errors.New("no output directory")
	case c.Archive == "":
		return errors.New("no archive")
	case c.Prefix == "":
		return errors.New("no filename prefix")
	case c.Colors < 0 || c.Colors > 256:
		return errors.New("colors must be between 0 and 256")
	case !cell.ValidCompressionLevel(c.PNGCompression):
		return errors.New("invalid PNG compression level")
	case c.ArchiveCompression < archive.HuffmanOnly || c.ArchiveCompression > archive.BestCompression:
		return errors.New("invalid archive compression level")
	}
	return c.Grid.Validate()
}
