package vmath

import "math"

// PlotLine rasterizes the segment from (x0,y0) to (x1,y1) with
// Bresenham's algorithm, calling plot for every cell including both
// endpoints
func PlotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PlotEllipse rasterizes the outline of an axis-aligned ellipse by
// parametric sampling. The sample count is kept a multiple of four so
// all four extreme cells are hit exactly, and dense enough relative to
// the perimeter that the outline has no gaps
func PlotEllipse(cx, cy int, rx, ry float64, plot func(x, y int)) {
	if rx <= 0 || ry <= 0 {
		return
	}

	steps := 4 * int(math.Ceil(math.Pi*math.Max(rx, ry)))
	if steps < 32 {
		steps = 32
	}

	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		x := float64(cx) + rx*math.Cos(a)
		y := float64(cy) + ry*math.Sin(a)
		plot(int(math.Round(x)), int(math.Round(y)))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
