// Package bmp writes color grids as uncompressed 24-bit BMP files.
package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/marben/mandel_bmp/palette"
)

const (
	BytesPerPixel  = 3
	FileHeaderSize = 14
	InfoHeaderSize = 40
)

var (
	ErrEmptyGrid  = errors.New("bmp: empty grid")
	ErrRaggedGrid = errors.New("bmp: rows of unequal length")
)

// Stride is the byte length of one pixel row, padded to a multiple of 4.
func Stride(width int) int {
	widthInBytes := width * BytesPerPixel
	return widthInBytes + padding(widthInBytes)
}

func padding(widthInBytes int) int {
	return (4 - widthInBytes%4) % 4
}

// FileHeader builds the 14 byte BITMAPFILEHEADER.
func FileHeader(height, stride int) [FileHeaderSize]byte {
	var h [FileHeaderSize]byte
	h[0] = 'B'
	h[1] = 'M'
	putUint32(h[2:6], uint32(FileHeaderSize+InfoHeaderSize+stride*height))
	// bytes 6-9 reserved
	putUint32(h[10:14], FileHeaderSize+InfoHeaderSize)
	return h
}

// InfoHeader builds the 40 byte BITMAPINFOHEADER. Compression, image size,
// resolution and color table fields stay zero.
func InfoHeader(height, width int) [InfoHeaderSize]byte {
	var h [InfoHeaderSize]byte
	putUint32(h[0:4], InfoHeaderSize)
	putUint32(h[4:8], uint32(int32(width)))
	putUint32(h[8:12], uint32(int32(height)))
	putUint16(h[12:14], 1)
	putUint16(h[14:16], BytesPerPixel*8)
	return h
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v & 0xff)
	b[1] = byte(v >> 8 & 0xff)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v & 0xff)
	b[1] = byte(v >> 8 & 0xff)
	b[2] = byte(v >> 16 & 0xff)
	b[3] = byte(v >> 24 & 0xff)
}

// Validate checks that img is non-empty and rectangular.
func Validate(img [][]palette.Color) error {
	if len(img) == 0 || len(img[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(img[0])
	for i, row := range img {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRaggedGrid, i, len(row), width)
		}
	}
	return nil
}

// Encode writes img to w. Rows go bottom-up and pixels as B, G, R.
func Encode(w io.Writer, img [][]palette.Color) error {
	if err := Validate(img); err != nil {
		return err
	}

	height := len(img)
	width := len(img[0])
	pad := padding(width * BytesPerPixel)
	stride := width*BytesPerPixel + pad

	bw := bufio.NewWriter(w)

	fileHeader := FileHeader(height, stride)
	if _, err := bw.Write(fileHeader[:]); err != nil {
		return fmt.Errorf("write file header: %w", err)
	}
	infoHeader := InfoHeader(height, width)
	if _, err := bw.Write(infoHeader[:]); err != nil {
		return fmt.Errorf("write info header: %w", err)
	}

	row := make([]byte, stride)
	for i := height - 1; i >= 0; i-- {
		for j, c := range img[i] {
			row[j*BytesPerPixel] = c.B
			row[j*BytesPerPixel+1] = c.G
			row[j*BytesPerPixel+2] = c.R
		}
		// padding bytes at the tail of row are never written, so they stay zero
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteFile creates or truncates fileName + ".bmp" and encodes img into it.
func WriteFile(fileName string, img [][]palette.Color) (err error) {
	if err := Validate(img); err != nil {
		return err
	}

	path := fileName + ".bmp"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	if err := Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}
