package archive

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

func crcFile(file string) (uint32, []byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	b := new(bytes.Buffer)
	if _, err = io.Copy(io.MultiWriter(h, b), f); err != nil {
		return 0, nil, err
	}

	return h.Sum32(), b.Bytes(), nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// Reading to EOF also checks the stored CRC
	return ioutil.ReadAll(rc)
}

// Verify checks that the archive at path holds exactly the given files, in
// order, each under its base filename with identical contents.
func Verify(path string, files []string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if len(r.File) != len(files) {
		return fmt.Errorf("archive: %d entries, expected %d", len(r.File), len(files))
	}

	for i, file := range files {
		entry := r.File[i]

		if name := filepath.Base(file); entry.Name != name {
			return fmt.Errorf("archive: entry %d is %q, expected %q", i, entry.Name, name)
		}

		crc, expected, err := crcFile(file)
		if err != nil {
			return err
		}

		if entry.CRC32 != crc {
			return fmt.Errorf("archive: %s: CRC %08X, expected %08X", entry.Name, entry.CRC32, crc)
		}

		b, err := readEntry(entry)
		if err != nil {
			return fmt.Errorf("archive: %s: %w", entry.Name, err)
		}

		if !bytes.Equal(b, expected) {
			return fmt.Errorf("archive: %s: contents differ", entry.Name)
		}
	}

	return nil
}
