package gridcut

import (
	"errors"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/gridcut/archive"
	"github.com/bodgit/gridcut/cell"
	"github.com/bodgit/gridcut/grid"
	"github.com/disintegration/imaging"
)

var errTooSmall = errors.New("image is smaller than the grid")

// Result describes the output of a successful run.
type Result struct {
	Archive string   // path of the ZIP archive
	Files   []string // cell files in the order they were written
	Cells   []grid.Cell
	Width   int
	Height  int
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// crop returns the pixels of m inside r. When native is set the pixel type
// of m is kept, so 16-bit sources stay 16-bit.
func crop(m image.Image, r image.Rectangle, native bool) image.Image {
	if native {
		if si, ok := m.(subImager); ok {
			return si.SubImage(r)
		}
	}
	return imaging.Crop(m, r)
}

func writeCell(file string, m image.Image, opts ...cell.Option) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := cell.Encode(f, m, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (s *Slicer) writeArchive(path string, files []string, level int) (err error) {
	w, err := archive.Create(path, level)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	for _, file := range files {
		if err := w.AddFile(file); err != nil {
			return err
		}
		s.logger.Printf("Added \"%s\" to \"%s\"\n", filepath.Base(file), path)
	}

	return nil
}

// Run slices the image described by c into one file per grid cell, in
// row-major order, and then bundles the files into an archive. Any error is
// an *Error naming the failed stage.
func (s *Slicer) Run(c Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, stageError(StageConfig, "", err)
	}

	src, err := imaging.Open(c.Input)
	if err != nil {
		return nil, stageError(StageDecode, c.Input, err)
	}

	b := src.Bounds()
	s.logger.Printf("Decoded \"%s\", %dx%d pixels\n", c.Input, b.Dx(), b.Dy())

	cw, ch := c.Grid.Size(b)
	if cw == 0 || ch == 0 {
		return nil, stageError(StageGeometry, c.Input, errTooSmall)
	}
	s.logger.Printf("Using a %s grid of %dx%d pixel cells\n", c.Grid, cw, ch)

	if dx, dy := c.Grid.Remainder(b); dx > 0 || dy > 0 {
		s.logger.Printf("Ignoring %d column(s) and %d row(s) of pixels outside the grid\n", dx, dy)
	}

	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return nil, stageError(StageMkdir, c.OutputDir, err)
	}

	opts := []cell.Option{
		cell.Colors(c.Colors),
		cell.CompressionLevel(c.PNGCompression),
	}

	cells := c.Grid.Cells(b)
	files := make([]string, 0, len(cells))
	for _, gc := range cells {
		file := filepath.Join(c.OutputDir, grid.Name(c.Prefix, gc.Index, cell.Ext))
		if err := writeCell(file, crop(src, gc.Rect, c.Colors == 0), opts...); err != nil {
			return nil, stageError(StageCell, file, err)
		}
		files = append(files, file)
		s.logger.Printf("Wrote cell %d (row %d, column %d) to \"%s\"\n", gc.Index, gc.Row, gc.Col, file)
	}

	if err := s.writeArchive(c.Archive, files, c.ArchiveCompression); err != nil {
		return nil, stageError(StageArchive, c.Archive, err)
	}

	if c.Verify {
		if err := archive.Verify(c.Archive, files); err != nil {
			return nil, stageError(StageVerify, c.Archive, err)
		}
		s.logger.Printf("Verified %d entries in \"%s\"\n", len(files), c.Archive)
	}

	return &Result{
		Archive: c.Archive,
		Files:   files,
		Cells:   cells,
		Width:   b.Dx(),
		Height:  b.Dy(),
	}, nil
}
