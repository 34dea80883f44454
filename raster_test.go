package mandel

import (
	"errors"
	"reflect"
	"testing"

	"github.com/marben/mandel_bmp/palette"
)

var square = Window{TopLeft: complex(-2, 2), BottomRight: complex(2, -2)}

// Without heightEpsilon, widths such as 93 lose their last row.
func TestSquareWindowIsSquareImage(t *testing.T) {
	for width := 1; width <= 400; width++ {
		pw := PixelWidth(square, width)
		if h := ImageHeight(square, pw); h != width {
			t.Fatalf("width %d: height = %d", width, h)
		}
	}
}

func TestHeightFollowsHorizontalSpan(t *testing.T) {
	// twice as wide as tall, the rows still match the column count
	wide := Window{TopLeft: complex(-2, 1), BottomRight: complex(2, -1)}
	img, err := Binary(wide, 40, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(img) != 40 {
		t.Fatalf("height = %d, want 40", len(img))
	}
}

func TestPointAt(t *testing.T) {
	pw := PixelWidth(square, 4)
	if pw != 1 {
		t.Fatalf("pixel width = %v, want 1", pw)
	}
	cases := []struct {
		row, col int
		want     complex128
	}{
		{0, 0, complex(-2, 2)},
		{0, 3, complex(1, 2)},
		{3, 0, complex(-2, -1)},
		{2, 1, complex(-1, 0)},
	}
	for _, c := range cases {
		if got := PointAt(square, pw, c.row, c.col); got != c.want {
			t.Errorf("PointAt(%d, %d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestBinary(t *testing.T) {
	img, err := Binary(square, 4, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]bool{
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, true, false},
	}
	if !reflect.DeepEqual(img, want) {
		t.Fatalf("Binary =\n%v\nwant\n%v", img, want)
	}
}

func TestNormalized(t *testing.T) {
	img, err := Normalized(square, 4, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]float64{
		{0, 0, 0.01, 0},
		{0, 0.02, -1, 0.01},
		{-1, -1, -1, 0.02},
		{0, 0.02, -1, 0.01},
	}
	if !reflect.DeepEqual(img, want) {
		t.Fatalf("Normalized =\n%v\nwant\n%v", img, want)
	}
}

func TestColored(t *testing.T) {
	// pixels 1+1i, 2+1i, 1, 2 with a budget of 4 escape at 1, 0, 2, 1
	w := Window{TopLeft: complex(1, 1), BottomRight: complex(3, -1)}
	inside := palette.Color{R: 255}

	img, err := Colored(w, 2, 4, inside, palette.Gradient{palette.Black, palette.White})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gray := func(v uint8) palette.Color { return palette.Color{R: v, G: v, B: v} }
	want := [][]palette.Color{
		{gray(64), gray(0)},
		{gray(128), gray(64)},
	}
	if !reflect.DeepEqual(img, want) {
		t.Fatalf("Colored = %v, want %v", img, want)
	}
}

func TestColoredInsideColor(t *testing.T) {
	w := Window{TopLeft: complex(-0.1, 0.1), BottomRight: complex(0.1, -0.1)}
	inside := palette.Color{R: 1, G: 2, B: 3}

	img, err := Colored(w, 5, 50, inside, palette.Sunset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, row := range img {
		for j, c := range row {
			if c != inside {
				t.Fatalf("pixel (%d, %d) = %v, want inside color", i, j, c)
			}
		}
	}
}

func TestRasterRejectsBadInput(t *testing.T) {
	flipped := Window{TopLeft: square.BottomRight, BottomRight: square.TopLeft}
	flat := Window{TopLeft: complex(-1, 0), BottomRight: complex(1, 0)}

	cases := []struct {
		name string
		err  error
		run  func() error
	}{
		{"zero width", ErrInvalidWidth, func() error { _, err := Binary(square, 0, 10); return err }},
		{"negative width", ErrInvalidWidth, func() error { _, err := Normalized(square, -4, 10); return err }},
		{"zero iterations", ErrInvalidIterations, func() error { _, err := Binary(square, 4, 0); return err }},
		{"flipped window", ErrInvalidWindow, func() error { _, err := Binary(flipped, 4, 10); return err }},
		{"zero height window", ErrInvalidWindow, func() error { _, err := Normalized(flat, 4, 10); return err }},
		{"empty gradient", palette.ErrEmptyGradient, func() error {
			_, err := Colored(square, 4, 10, palette.Black, nil)
			return err
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.run(); !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
		})
	}
}

func TestWorkersMatchSequential(t *testing.T) {
	w := SeahorseValley.Window()
	want, err := Colored(w, 97, 300, palette.Black, palette.Ocean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range []int{0, 1, 2, 3, 8, 200} {
		got, err := Colored(w, 97, 300, palette.Black, palette.Ocean, WithWorkers(n))
		if err != nil {
			t.Fatalf("workers %d: unexpected error: %v", n, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("workers %d: output differs from sequential render", n)
		}
	}
}
