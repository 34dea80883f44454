// Package term shows rendered grids in a terminal using tcell.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/marben/mandel_bmp/palette"
)

// HalfBlock carries two pixels per cell: the foreground paints the upper
// pixel and the background the lower one.
const HalfBlock = '▀'

func rgb(c palette.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints img onto s, two image rows per screen row, clipped to the screen.
// The lower half of the last cell row uses the default background when img
// has an odd number of rows.
func Draw(s tcell.Screen, img [][]palette.Color) {
	sw, sh := s.Size()
	s.Clear()

	for y := 0; y < len(img) && y/2 < sh; y += 2 {
		for x := 0; x < len(img[y]) && x < sw; x++ {
			style := tcell.StyleDefault.Foreground(rgb(img[y][x]))
			if y+1 < len(img) {
				style = style.Background(rgb(img[y+1][x]))
			}
			s.SetContent(x, y/2, HalfBlock, nil, style)
		}
	}
}

// DrawBinary paints '#' for points in the set, one image row per screen row.
func DrawBinary(s tcell.Screen, img [][]bool) {
	sw, sh := s.Size()
	s.Clear()

	for y := 0; y < len(img) && y < sh; y++ {
		for x := 0; x < len(img[y]) && x < sw; x++ {
			ch := ' '
			if img[y][x] {
				ch = '#'
			}
			s.SetContent(x, y, ch, nil, tcell.StyleDefault)
		}
	}
}

// Show opens the terminal, paints img and blocks until the user presses
// q, Esc or Ctrl-C, or ctx is done.
func Show(ctx context.Context, img [][]palette.Color) error {
	return show(ctx, func(s tcell.Screen) { Draw(s, img) })
}

// ShowBinary is Show for a binary grid, painted with DrawBinary.
func ShowBinary(ctx context.Context, img [][]bool) error {
	return show(ctx, func(s tcell.Screen) { DrawBinary(s, img) })
}

func show(ctx context.Context, paint func(tcell.Screen)) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer s.Fini()

	return run(ctx, s, paint)
}

func run(ctx context.Context, s tcell.Screen, paint func(tcell.Screen)) error {
	paint(s)
	s.Show()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventResize:
				paint(s)
				s.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
			}
		}
	}()

	select {
	case <-quit:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
