package mandel

import (
	"image"
	"sync"
)

// bandScheduler hands out disjoint row bands of an image to workers.
// A band is only ever given to one worker, so workers write their own
// rows without further locking.
type bandScheduler struct {
	unstarted []image.Rectangle
	m         sync.Mutex
}

func newBandScheduler(w, h, bandH int) *bandScheduler {
	return &bandScheduler{
		unstarted: splitRectNoClip(image.Rect(0, 0, w, h), w, bandH),
	}
}

func (bs *bandScheduler) popTile() (tile image.Rectangle, found bool) {
	bs.m.Lock()
	defer bs.m.Unlock()

	if len(bs.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	tile = bs.unstarted[0]
	bs.unstarted = bs.unstarted[1:]
	return tile, true
}

// run drains the scheduler on up to n goroutines, never more than there are
// bands, and returns once every band is done.
func (bs *bandScheduler) run(n int, render func(tile image.Rectangle)) {
	bs.m.Lock()
	n = min(n, len(bs.unstarted))
	bs.m.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				tile, found := bs.popTile()
				if !found {
					return
				}
				render(tile)
			}
		}()
	}
	wg.Wait()
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
