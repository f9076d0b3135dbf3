package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
	"github.com/lixenwraith/clockface/vmath"
)

// LabelsRenderer draws hour and minute tick marks on the dial rim
type LabelsRenderer struct{}

// NewLabelsRenderer creates a labels renderer
func NewLabelsRenderer() *LabelsRenderer {
	return &LabelsRenderer{}
}

// Name implements Renderer
func (r *LabelsRenderer) Name() string { return "labels" }

// Render implements Renderer
func (r *LabelsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.Dial.Valid() {
		return
	}

	style := ctx.Theme.Style(ctx.Theme.Labels)

	if ctx.ShowMinuteLabels {
		for i := 0; i < 60; i++ {
			// Hour tick covers this angle with a longer mark
			if ctx.ShowHourLabels && i%5 == 0 {
				continue
			}
			r.tick(ctx, buf, float64(i)*6.0, parameter.MinuteTickLength, style)
		}
	}

	if ctx.ShowHourLabels {
		for i := 0; i < 12; i++ {
			r.tick(ctx, buf, float64(i)*30.0, parameter.HourTickLength, style)
		}
	}
}

// tick draws one mark from the rim inward
func (r *LabelsRenderer) tick(ctx render.Context, buf *render.Buffer, angle, length float64, style tcell.Style) {
	x0, y0 := ctx.Dial.PointAt(angle, 1.0)
	x1, y1 := ctx.Dial.PointAt(angle, 1.0-length)
	vmath.PlotLine(x0, y0, x1, y1, func(x, y int) {
		buf.Set(x, y, parameter.TickRune, style)
	})
}
