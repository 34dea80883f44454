package mandel

import (
	"fmt"
	"image"
	"math"

	"github.com/marben/mandel_bmp/palette"
)

// heightEpsilon absorbs the round-off in span / (span / n), which can land
// just below n and would otherwise lose the last row: 4 / (4 / 93) is
// 92.99999999999999. TestSquareWindowIsSquareImage sweeps widths 1..400
// of a square window and fails without it.
const heightEpsilon = 1e-9

// PixelWidth is the side of one square pixel in plane units.
func PixelWidth(w Window, imgWidth int) float64 {
	return (real(w.BottomRight) - real(w.TopLeft)) / float64(imgWidth)
}

// ImageHeight is the number of pixel rows for the given pixel width.
// It is derived from the horizontal span, so the rows cover the window's
// vertical span exactly only when the window is square.
func ImageHeight(w Window, pixelWidth float64) int {
	return int(math.Floor((real(w.BottomRight)-real(w.TopLeft))/pixelWidth + heightEpsilon))
}

// PointAt maps pixel (row, col) to its point in the plane; row 0 is the top.
func PointAt(w Window, pixelWidth float64, row, col int) complex128 {
	return complex(
		real(w.TopLeft)+float64(col)*pixelWidth,
		imag(w.TopLeft)-float64(row)*pixelWidth,
	)
}

type config struct {
	workers int
}

type Option func(*config)

// WithWorkers renders row bands on n goroutines. n <= 1 renders sequentially.
// The output does not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Binary marks each pixel true when its point is in the set.
func Binary(w Window, imgWidth, maxIter int, opts ...Option) ([][]bool, error) {
	img, err := rasterize(w, imgWidth, maxIter, opts, func(k int) bool {
		return k == Bounded
	})
	if err != nil {
		return nil, fmt.Errorf("binary: %w", err)
	}
	return img, nil
}

// Normalized stores -1 for points in the set and k/maxIter for points that
// escaped at iteration k; fast escapes are close to 0.
func Normalized(w Window, imgWidth, maxIter int, opts ...Option) ([][]float64, error) {
	img, err := rasterize(w, imgWidth, maxIter, opts, func(k int) float64 {
		if k == Bounded {
			return -1
		}
		return float64(k) / float64(maxIter)
	})
	if err != nil {
		return nil, fmt.Errorf("normalized: %w", err)
	}
	return img, nil
}

// Colored paints points in the set with inside and samples outside by escape
// rate for the rest.
func Colored(w Window, imgWidth, maxIter int, inside palette.Color, outside palette.Gradient, opts ...Option) ([][]palette.Color, error) {
	if err := outside.Validate(); err != nil {
		return nil, fmt.Errorf("colored: %w", err)
	}

	img, err := rasterize(w, imgWidth, maxIter, opts, func(k int) palette.Color {
		if k == Bounded {
			return inside
		}
		return palette.Sample(outside, float64(k)/float64(maxIter))
	})
	if err != nil {
		return nil, fmt.Errorf("colored: %w", err)
	}
	return img, nil
}

func rasterize[T any](w Window, imgWidth, maxIter int, opts []Option, cell func(k int) T) ([][]T, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if imgWidth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, imgWidth)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIter)
	}

	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	pw := PixelWidth(w, imgWidth)
	imgHeight := ImageHeight(w, pw)

	img := make([][]T, imgHeight)
	for i := range img {
		img[i] = make([]T, imgWidth)
	}

	render := func(tile image.Rectangle) {
		for i := tile.Min.Y; i < tile.Max.Y; i++ {
			for j := tile.Min.X; j < tile.Max.X; j++ {
				img[i][j] = cell(EscapeIterations(PointAt(w, pw, i, j), maxIter))
			}
		}
	}

	if cfg.workers <= 1 {
		render(image.Rect(0, 0, imgWidth, imgHeight))
		return img, nil
	}

	// roughly four bands per worker
	bandH := max(1, imgHeight/(cfg.workers*4))
	newBandScheduler(imgWidth, imgHeight, bandH).run(cfg.workers, render)

	return img, nil
}
