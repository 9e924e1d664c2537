package radiance

import (
	"image"
	"sync"

	"github.com/mdouchement/hdr"
)

// tiles splits a width x height image into at most workers disjoint
// rectangles covering every pixel.
//
// hdr.Split truncates the tile size, so the last column and row of tiles
// are stretched to the image edge.
func tiles(width, height, workers int) []image.Rectangle {
	workers = minInt(workers, minInt(width, height))
	if workers < 2 {
		return []image.Rectangle{image.Rect(0, 0, width, height)}
	}

	rects := hdr.Split(0, 0, width, height, workers)
	var maxX, maxY int
	for _, r := range rects {
		if r.Max.X > maxX {
			maxX = r.Max.X
		}
		if r.Max.Y > maxY {
			maxY = r.Max.Y
		}
	}
	for i := range rects {
		if rects[i].Max.X == maxX {
			rects[i].Max.X = width
		}
		if rects[i].Max.Y == maxY {
			rects[i].Max.Y = height
		}
	}
	return rects
}

// parallelTiles runs fn on each tile of the image from its own goroutine.
func parallelTiles(width, height, workers int, fn func(r image.Rectangle)) {
	rects := tiles(width, height, workers)
	if len(rects) == 1 {
		fn(rects[0])
		return
	}

	var wg sync.WaitGroup
	for _, r := range rects {
		wg.Add(1)
		go func(r image.Rectangle) {
			defer wg.Done()
			fn(r)
		}(r)
	}
	wg.Wait()
}
