package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(10, 5)

	if buf.Width() != 10 {
		t.Errorf("Expected width 10, got %d", buf.Width())
	}
	if buf.Height() != 5 {
		t.Errorf("Expected height 5, got %d", buf.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell, ok := buf.Get(x, y)
			if !ok {
				t.Fatalf("Expected cell at (%d,%d) to be in bounds", x, y)
			}
			if cell.Rune != ' ' {
				t.Errorf("Expected space at (%d,%d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	buf.Set(3, 2, 'X', style)

	cell, ok := buf.Get(3, 2)
	if !ok {
		t.Fatal("Expected (3,2) to be in bounds")
	}
	if cell.Rune != 'X' {
		t.Errorf("Expected 'X', got %q", cell.Rune)
	}
	if cell.Style != style {
		t.Error("Expected style to round-trip through Set/Get")
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(10, 5)

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative x", -1, 0},
		{"Negative y", 0, -1},
		{"X at width", 10, 0},
		{"Y at height", 0, 5},
		{"Far outside", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic
			buf.Set(tt.x, tt.y, 'X', tcell.StyleDefault)

			if _, ok := buf.Get(tt.x, tt.y); ok {
				t.Errorf("Expected (%d,%d) to be out of bounds", tt.x, tt.y)
			}
		})
	}
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(8, 4)
	style := tcell.StyleDefault.Background(tcell.ColorBlue)

	buf.Set(1, 1, 'A', tcell.StyleDefault)
	buf.Set(7, 3, 'B', tcell.StyleDefault)
	buf.Clear(style)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			cell, _ := buf.Get(x, y)
			if cell.Rune != ' ' {
				t.Errorf("Expected space at (%d,%d) after clear, got %q", x, y, cell.Rune)
			}
			if cell.Style != style {
				t.Errorf("Expected clear style at (%d,%d)", x, y)
			}
		}
	}
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(10, 5)
	buf.Set(2, 2, 'X', tcell.StyleDefault)

	buf.Resize(20, 10)

	if buf.Width() != 20 || buf.Height() != 10 {
		t.Errorf("Expected 20x10 after resize, got %dx%d", buf.Width(), buf.Height())
	}

	// Resize clears content
	cell, _ := buf.Get(2, 2)
	if cell.Rune != ' ' {
		t.Errorf("Expected space at (2,2) after resize, got %q", cell.Rune)
	}
}

func TestBufferResizeNegative(t *testing.T) {
	buf := NewBuffer(10, 5)
	buf.Resize(-3, -1)

	if buf.Width() != 0 || buf.Height() != 0 {
		t.Errorf("Expected 0x0 after negative resize, got %dx%d", buf.Width(), buf.Height())
	}

	// Zero-sized buffer must reject writes without panicking
	buf.Set(0, 0, 'X', tcell.StyleDefault)
	if _, ok := buf.Get(0, 0); ok {
		t.Error("Expected (0,0) to be out of bounds on empty buffer")
	}
}

func TestBufferSetString(t *testing.T) {
	buf := NewBuffer(10, 3)
	style := tcell.StyleDefault

	buf.SetString(7, 1, "ABCDE", style)

	// First three runes land, the rest clip at the edge
	for i, want := range []rune{'A', 'B', 'C'} {
		cell, _ := buf.Get(7+i, 1)
		if cell.Rune != want {
			t.Errorf("Expected %q at (%d,1), got %q", want, 7+i, cell.Rune)
		}
	}
	cell, _ := buf.Get(0, 1)
	if cell.Rune != ' ' {
		t.Errorf("Expected clipped write not to wrap, got %q at (0,1)", cell.Rune)
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	buf.Fill(2, 1, 3, 2, '#', style)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell, _ := buf.Get(x, y)
			inRegion := x >= 2 && x < 5 && y >= 1 && y < 3
			if inRegion && cell.Rune != '#' {
				t.Errorf("Expected '#' at (%d,%d), got %q", x, y, cell.Rune)
			}
			if !inRegion && cell.Rune != ' ' {
				t.Errorf("Expected space at (%d,%d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	buf := NewBuffer(10, 5)
	buf.Set(4, 2, '@', tcell.StyleDefault)
	buf.Flush(screen)

	contents, w, h := screen.GetContents()
	if w != 10 || h != 5 {
		t.Fatalf("Expected 10x5 screen, got %dx%d", w, h)
	}

	cell := contents[2*10+4]
	if len(cell.Runes) == 0 || cell.Runes[0] != '@' {
		t.Errorf("Expected '@' at (4,2) on screen, got %v", cell.Runes)
	}
}
