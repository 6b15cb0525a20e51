package raysphere

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WritePPM serializes buf as plain-text PPM: a three-line header, then one
// "R G B " triplet per pixel in row-major order and a newline after each row.
func WritePPM(w io.Writer, buf *PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", PPMMagic, buf.Width, buf.Height, MaxChannel); err != nil {
		return err
	}
	line := make([]byte, 0, buf.Width*12+1)
	for j := 0; j < buf.Height; j++ {
		line = line[:0]
		for _, p := range buf.Row(j) {
			line = strconv.AppendUint(line, uint64(p.R), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(p.G), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(p.B), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRawPPM serializes buf as binary PPM (P6), 3 bytes per pixel.
func WriteRawPPM(w io.Writer, buf *PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", RawPPMMagic, buf.Width, buf.Height, MaxChannel); err != nil {
		return err
	}
	for j := 0; j < buf.Height; j++ {
		for _, p := range buf.Row(j) {
			if _, err := bw.Write([]byte{p.R, p.G, p.B}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// SavePPM writes buf to path as P3.
func SavePPM(path string, buf *PixelBuffer) error {
	return saveWith(path, buf, WritePPM)
}

// SaveRawPPM writes buf to path as P6.
func SaveRawPPM(path string, buf *PixelBuffer) error {
	return saveWith(path, buf, WriteRawPPM)
}

func saveWith(path string, buf *PixelBuffer, write func(io.Writer, *PixelBuffer) error) error {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
