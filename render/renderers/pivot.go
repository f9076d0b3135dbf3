package renderers

import (
	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
)

// PivotRenderer marks the dial center where the hands meet
type PivotRenderer struct{}

// NewPivotRenderer creates a pivot renderer
func NewPivotRenderer() *PivotRenderer {
	return &PivotRenderer{}
}

// Name implements Renderer
func (r *PivotRenderer) Name() string { return "pivot" }

// Render implements Renderer
func (r *PivotRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.Dial.Valid() {
		return
	}

	buf.Set(ctx.Dial.CenterX, ctx.Dial.CenterY, parameter.PivotRune, ctx.Theme.Style(ctx.Theme.Pivot))
}
