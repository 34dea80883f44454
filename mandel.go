package mandel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidWindow     = errors.New("invalid window")
	ErrInvalidWidth      = errors.New("image width must be positive")
	ErrInvalidIterations = errors.New("iteration budget must be positive")
)

// Window is a rectangle of the complex plane.
// TopLeft has the greatest imaginary part and the least real part,
// BottomRight the reverse.
type Window struct {
	TopLeft     complex128
	BottomRight complex128
}

// Validate reports ErrInvalidWindow unless w spans a positive area.
func (w Window) Validate() error {
	if real(w.TopLeft) >= real(w.BottomRight) {
		return fmt.Errorf("%w: top-left real %g must be less than bottom-right real %g",
			ErrInvalidWindow, real(w.TopLeft), real(w.BottomRight))
	}
	if imag(w.TopLeft) <= imag(w.BottomRight) {
		return fmt.Errorf("%w: top-left imag %g must be greater than bottom-right imag %g",
			ErrInvalidWindow, imag(w.TopLeft), imag(w.BottomRight))
	}
	return nil
}

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Window returns the region as top-left / bottom-right corners.
func (r Region) Window() Window {
	return Window{
		TopLeft:     complex(r.Xmin, r.Ymax),
		BottomRight: complex(r.Xmax, r.Ymin),
	}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full – the whole set, square so the image comes out square
	Full = Region{
		Xmin: -2,
		Xmax: 2,
		Ymin: -2,
		Ymax: 2,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var regions = map[string]Region{
	"full":                    Full,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// RegionByName looks up a landmark by its kebab-case name, case-insensitively.
func RegionByName(name string) (Region, bool) {
	r, ok := regions[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// RegionNames lists the known landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for n := range regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
