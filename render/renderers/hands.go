package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
	"github.com/lixenwraith/clockface/vmath"
)

// HandsRenderer draws the hour, minute and second hands. Hands draw in
// that order, so the faster hand paints over the slower one where they
// cross
type HandsRenderer struct{}

// NewHandsRenderer creates a hands renderer
func NewHandsRenderer() *HandsRenderer {
	return &HandsRenderer{}
}

// Name implements Renderer
func (r *HandsRenderer) Name() string { return "hands" }

// Render implements Renderer
func (r *HandsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.Dial.Valid() {
		return
	}

	angles := ctx.Time.Angles()

	r.hand(ctx, buf, angles.Hour, ctx.HourLength, ctx.Theme.HourHand)
	r.hand(ctx, buf, angles.Minute, ctx.MinuteLength, ctx.Theme.MinuteHand)
	if ctx.ShowSecondHand {
		r.hand(ctx, buf, angles.Second, ctx.SecondLength, ctx.Theme.SecondHand)
	}
}

// hand draws one segment from the dial center to the hand tip
func (r *HandsRenderer) hand(ctx render.Context, buf *render.Buffer, angle, length float64, color tcell.Color) {
	style := ctx.Theme.Style(color)
	tipX, tipY := ctx.Dial.PointAt(angle, length)
	vmath.PlotLine(ctx.Dial.CenterX, ctx.Dial.CenterY, tipX, tipY, func(x, y int) {
		buf.Set(x, y, parameter.HandRune, style)
	})
}
