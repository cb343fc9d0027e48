/*
Package archive bundles files into a ZIP archive.

Each file is stored as a flat entry named after its base filename, in the
order the files are added. Entries are compressed with Deflate.
*/
package archive

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Compression levels accepted by Create.
const (
	DefaultCompression = flate.DefaultCompression
	BestSpeed          = flate.BestSpeed
	BestCompression    = flate.BestCompression
	HuffmanOnly        = flate.HuffmanOnly
)

// Writer writes files into a ZIP archive.
type Writer struct {
	f      *os.File
	zw     *zip.Writer
	closed bool
}

// Create creates the archive at path, truncating it if it already exists.
// The level is any valid flate compression level.
func Create(path string, level int) (*Writer, error) {
	// Reject bad levels before the file is created
	if _, err := flate.NewWriter(io.Discard, level); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	return &Writer{
		f:  f,
		zw: zw,
	}, nil
}

// AddFile copies the file at path into the archive under its base filename.
func (w *Writer) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	fh, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	fh.Name = filepath.Base(path)
	fh.Method = zip.Deflate

	ew, err := w.zw.CreateHeader(fh)
	if err != nil {
		return err
	}

	_, err = io.Copy(ew, f)
	return err
}

// Close writes the central directory and closes the underlying file. Entries
// added before any failure remain readable. Calling Close more than once is
// a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.zw.Close()
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}
