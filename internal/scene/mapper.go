package scene

import (
	"errors"
	"fmt"
	"strings"

	mandel "github.com/marben/mandel_bmp"
	"github.com/marben/mandel_bmp/palette"
)

// Map overlays d on the defaults and validates the result.
// path is only used in error messages and may be empty.
func Map(path string, d Document) (Scene, error) {
	s := Default()

	if name := strings.TrimSpace(d.Region); name != "" {
		r, ok := mandel.RegionByName(name)
		if !ok {
			return Scene{}, invalidField(path, "region",
				fmt.Errorf("unknown region %q (known: %s)", name, strings.Join(mandel.RegionNames(), ", ")))
		}
		s.Window = r.Window()
	}

	switch {
	case d.TopLeft != nil && d.BottomRight != nil:
		s.Window = mandel.Window{
			TopLeft:     complex(d.TopLeft.Re, d.TopLeft.Im),
			BottomRight: complex(d.BottomRight.Re, d.BottomRight.Im),
		}
	case d.TopLeft != nil:
		return Scene{}, invalidField(path, "bottom_right", errors.New("required when top_left is set"))
	case d.BottomRight != nil:
		return Scene{}, invalidField(path, "top_left", errors.New("required when bottom_right is set"))
	}
	if err := s.Window.Validate(); err != nil {
		return Scene{}, invalidField(path, "window", err)
	}

	if d.Width != 0 {
		s.Width = d.Width
	}
	if s.Width <= 0 {
		return Scene{}, invalidField(path, "width", mandel.ErrInvalidWidth)
	}

	if d.Iterations != 0 {
		s.Iterations = d.Iterations
	}
	if s.Iterations <= 0 {
		return Scene{}, invalidField(path, "iterations", mandel.ErrInvalidIterations)
	}

	if strings.TrimSpace(d.Inside) != "" {
		c, err := palette.ParseHex(d.Inside)
		if err != nil {
			return Scene{}, invalidField(path, "inside", err)
		}
		s.Inside = c
	}

	outside, err := mapGradient(path, d)
	if err != nil {
		return Scene{}, err
	}
	if outside != nil {
		s.Outside = outside
	}

	if out := strings.TrimSpace(d.Output); out != "" {
		s.Output = strings.TrimSuffix(out, ".bmp")
	}

	if d.Workers < 0 {
		return Scene{}, invalidField(path, "workers", fmt.Errorf("must not be negative, got %d", d.Workers))
	}
	s.Workers = d.Workers

	return s, nil
}

func mapGradient(path string, d Document) (palette.Gradient, error) {
	name := strings.TrimSpace(d.Gradient)
	if name != "" && len(d.Stops) > 0 {
		return nil, invalidField(path, "gradient", errors.New("set either gradient or stops, not both"))
	}

	if name != "" {
		g, ok := palette.ByName(name)
		if !ok {
			return nil, invalidField(path, "gradient",
				fmt.Errorf("unknown gradient %q (known: %s)", name, strings.Join(palette.Names(), ", ")))
		}
		return g, nil
	}

	if len(d.Stops) == 0 {
		return nil, nil
	}
	g := make(palette.Gradient, 0, len(d.Stops))
	for i, hex := range d.Stops {
		c, err := palette.ParseHex(hex)
		if err != nil {
			return nil, invalidField(path, fmt.Sprintf("stops[%d]", i), err)
		}
		g = append(g, c)
	}
	return g, nil
}
