/*
Package gridcut is a library for slicing an image composed of a uniform grid
of pictures into one PNG file per grid cell and bundling the results into a
ZIP archive.
*/
package gridcut

import "log"

// Slicer runs the slicing pipeline.
type Slicer struct {
	logger *log.Logger
}

// New returns a Slicer that reports progress to logger.
func New(logger *log.Logger) *Slicer {
	return &Slicer{
		logger: logger,
	}
}
