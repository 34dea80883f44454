package mandel

import (
	"bufio"
	"io"
)

// PrintBinary writes '#' for points in the set and ' ' otherwise, one row per line.
func PrintBinary(w io.Writer, img [][]bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range img {
		for _, in := range row {
			if in {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PrintNormalized shades each pixel by escape rate, see Symbol.
func PrintNormalized(w io.Writer, img [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range img {
		for _, v := range row {
			bw.WriteByte(Symbol(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Symbol maps a normalized escape value to its text glyph.
// Negative values are points in the set.
func Symbol(v float64) byte {
	switch {
	case v < 0:
		return '#'
	case v < 0.2:
		return ' '
	case v < 0.4:
		return '.'
	case v < 0.6:
		return ','
	case v < 0.8:
		return '-'
	default:
		return '*'
	}
}
