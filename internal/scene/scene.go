// Package scene bundles the inputs of one render and loads them from YAML or JSON.
package scene

import (
	mandel "github.com/marben/mandel_bmp"
	"github.com/marben/mandel_bmp/palette"
)

const (
	DefaultWidth      = 150
	DefaultIterations = 100
	DefaultOutput     = "mandelbrot"
)

// Scene is everything needed to render one image.
type Scene struct {
	Window     mandel.Window
	Width      int
	Iterations int
	Inside     palette.Color
	Outside    palette.Gradient
	Output     string // file name without the .bmp extension
	Workers    int
}

// Default is the full view at the default size with the sunset gradient.
func Default() Scene {
	return Scene{
		Window:     mandel.Full.Window(),
		Width:      DefaultWidth,
		Iterations: DefaultIterations,
		Inside:     palette.Black,
		Outside:    append(palette.Gradient(nil), palette.Sunset...),
		Output:     DefaultOutput,
	}
}

func (s Scene) options() []mandel.Option {
	return []mandel.Option{mandel.WithWorkers(s.Workers)}
}

// Binary renders the scene as in-set flags.
func (s Scene) Binary() ([][]bool, error) {
	return mandel.Binary(s.Window, s.Width, s.Iterations, s.options()...)
}

// Normalized renders the scene as escape rates, -1 inside the set.
func (s Scene) Normalized() ([][]float64, error) {
	return mandel.Normalized(s.Window, s.Width, s.Iterations, s.options()...)
}

// Colored renders the scene through its inside color and gradient.
func (s Scene) Colored() ([][]palette.Color, error) {
	return mandel.Colored(s.Window, s.Width, s.Iterations, s.Inside, s.Outside, s.options()...)
}

// Document converts s back to its wire/file form.
func (s Scene) Document() Document {
	stops := make([]string, len(s.Outside))
	for i, c := range s.Outside {
		stops[i] = c.Hex()
	}
	return Document{
		TopLeft:     &Point{Re: real(s.Window.TopLeft), Im: imag(s.Window.TopLeft)},
		BottomRight: &Point{Re: real(s.Window.BottomRight), Im: imag(s.Window.BottomRight)},
		Width:       s.Width,
		Iterations:  s.Iterations,
		Inside:      s.Inside.Hex(),
		Stops:       stops,
		Output:      s.Output,
		Workers:     s.Workers,
	}
}
