package vmath

import "testing"

type point struct {
	x, y int
}

func collectLine(x0, y0, x1, y1 int) []point {
	var pts []point
	PlotLine(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, point{x, y})
	})
	return pts
}

func TestPlotLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantCount      int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 3, 1, 3, 7, 7},
		{"diagonal", 0, 0, 4, 4, 5},
		{"single point", 3, 3, 3, 3, 1},
		{"negative direction", 5, 5, 0, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := collectLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(pts) != tt.wantCount {
				t.Errorf("Expected %d points, got %d", tt.wantCount, len(pts))
			}
			if pts[0] != (point{tt.x0, tt.y0}) {
				t.Errorf("Expected first point (%d,%d), got %v", tt.x0, tt.y0, pts[0])
			}
			if pts[len(pts)-1] != (point{tt.x1, tt.y1}) {
				t.Errorf("Expected last point (%d,%d), got %v", tt.x1, tt.y1, pts[len(pts)-1])
			}
		})
	}
}

func TestPlotLineContiguous(t *testing.T) {
	// Consecutive cells of a steep line never step more than one cell
	// in either axis
	pts := collectLine(0, 0, 3, 11)
	for i := 1; i < len(pts); i++ {
		dx := abs(pts[i].x - pts[i-1].x)
		dy := abs(pts[i].y - pts[i-1].y)
		if dx > 1 || dy > 1 {
			t.Fatalf("Gap between %v and %v", pts[i-1], pts[i])
		}
	}
}

func TestPlotEllipseExtremes(t *testing.T) {
	cx, cy := 20, 10
	rx, ry := 15.0, 7.0

	cells := make(map[point]bool)
	PlotEllipse(cx, cy, rx, ry, func(x, y int) {
		cells[point{x, y}] = true
	})

	extremes := []point{
		{cx + 15, cy},
		{cx - 15, cy},
		{cx, cy + 7},
		{cx, cy - 7},
	}
	for _, p := range extremes {
		if !cells[p] {
			t.Errorf("Expected extreme cell (%d,%d) on outline", p.x, p.y)
		}
	}

	for p := range cells {
		if p.x < cx-15 || p.x > cx+15 || p.y < cy-7 || p.y > cy+7 {
			t.Errorf("Outline cell (%d,%d) outside bounding box", p.x, p.y)
		}
	}
}

func TestPlotEllipseGapFree(t *testing.T) {
	// Every outline cell has another outline cell among its 8 neighbors
	cells := make(map[point]bool)
	PlotEllipse(40, 12, 30.0, 10.0, func(x, y int) {
		cells[point{x, y}] = true
	})

	if len(cells) < 32 {
		t.Fatalf("Expected a dense outline, got %d cells", len(cells))
	}

	for p := range cells {
		found := false
		for dx := -1; dx <= 1 && !found; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if cells[point{p.x + dx, p.y + dy}] {
					found = true
					break
				}
			}
		}
		if !found {
			t.Fatalf("Isolated outline cell (%d,%d)", p.x, p.y)
		}
	}
}

func TestPlotEllipseDegenerate(t *testing.T) {
	calls := 0
	PlotEllipse(5, 5, 0, 3, func(x, y int) { calls++ })
	PlotEllipse(5, 5, 3, 0, func(x, y int) { calls++ })
	PlotEllipse(5, 5, -1, -1, func(x, y int) { calls++ })
	if calls != 0 {
		t.Errorf("Expected no cells for degenerate radii, got %d", calls)
	}
}
