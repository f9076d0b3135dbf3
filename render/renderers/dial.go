package renderers

import (
	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
	"github.com/lixenwraith/clockface/vmath"
)

// DialRenderer draws the elliptical face outline
type DialRenderer struct{}

// NewDialRenderer creates a dial renderer
func NewDialRenderer() *DialRenderer {
	return &DialRenderer{}
}

// Name implements Renderer
func (r *DialRenderer) Name() string { return "dial" }

// Render implements Renderer
func (r *DialRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.Dial.Valid() {
		return
	}

	style := ctx.Theme.Style(ctx.Theme.Face)
	vmath.PlotEllipse(ctx.Dial.CenterX, ctx.Dial.CenterY, ctx.Dial.RadiusX, ctx.Dial.RadiusY, func(x, y int) {
		buf.Set(x, y, parameter.DialRune, style)
	})
}
