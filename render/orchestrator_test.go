package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/theme"
)

// markRenderer stamps its rune at a fixed cell, recording render order
type markRenderer struct {
	name  string
	mark  rune
	order *[]string
}

func (m *markRenderer) Name() string { return m.name }

func (m *markRenderer) Render(ctx Context, buf *Buffer) {
	buf.Set(0, 0, m.mark, tcell.StyleDefault)
	*m.order = append(*m.order, m.name)
}

func newTestOrchestrator(t *testing.T, width, height int) *Orchestrator {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return NewOrchestrator(screen, width, height)
}

func testContext(width, height int) Context {
	return Context{
		Width:  width,
		Height: height,
		Theme:  theme.Default(),
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	orch := newTestOrchestrator(t, 20, 10)

	var order []string
	orch.Register(&markRenderer{name: "overlay", mark: 'O', order: &order}, PriorityOverlay)
	orch.Register(&markRenderer{name: "background", mark: 'B', order: &order}, PriorityBackground)
	orch.Register(&markRenderer{name: "hands", mark: 'H', order: &order}, PriorityHands)

	orch.RenderFrame(testContext(20, 10))

	want := []string{"background", "hands", "overlay"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d renders, got %d", len(want), len(order))
	}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("Expected render %d to be %s, got %s", i, name, order[i])
		}
	}

	// Highest priority paints last and wins the cell
	cell, _ := orch.Buffer().Get(0, 0)
	if cell.Rune != 'O' {
		t.Errorf("Expected overlay mark 'O' at (0,0), got %q", cell.Rune)
	}
}

func TestOrchestratorRegistrationStability(t *testing.T) {
	orch := newTestOrchestrator(t, 20, 10)

	var order []string
	orch.Register(&markRenderer{name: "first", mark: '1', order: &order}, PriorityDial)
	orch.Register(&markRenderer{name: "second", mark: '2', order: &order}, PriorityDial)
	orch.Register(&markRenderer{name: "third", mark: '3', order: &order}, PriorityDial)

	orch.RenderFrame(testContext(20, 10))

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("Expected equal-priority render %d to be %s, got %s", i, name, order[i])
		}
	}
}

func TestOrchestratorResizesBufferToContext(t *testing.T) {
	orch := newTestOrchestrator(t, 20, 10)

	orch.RenderFrame(testContext(35, 17))

	if orch.Buffer().Width() != 35 || orch.Buffer().Height() != 17 {
		t.Errorf("Expected buffer to follow context to 35x17, got %dx%d",
			orch.Buffer().Width(), orch.Buffer().Height())
	}
}

func TestOrchestratorClearsBetweenFrames(t *testing.T) {
	orch := newTestOrchestrator(t, 20, 10)

	var order []string
	r := &markRenderer{name: "mark", mark: 'M', order: &order}
	orch.Register(r, PriorityDial)

	orch.RenderFrame(testContext(20, 10))
	orch.Buffer().Set(5, 5, 'S', tcell.StyleDefault)
	orch.RenderFrame(testContext(20, 10))

	cell, _ := orch.Buffer().Get(5, 5)
	if cell.Rune != ' ' {
		t.Errorf("Expected stale cell cleared between frames, got %q", cell.Rune)
	}
}
