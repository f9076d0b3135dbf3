package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
)

// StatusBarRenderer draws the one-row status bar on the bottom screen row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Name implements Renderer
func (r *StatusBarRenderer) Name() string { return "status_bar" }

// Render implements Renderer
func (r *StatusBarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.ShowStatusBar {
		return
	}

	statusY := ctx.Height - 1
	textStyle := ctx.Theme.Style(ctx.Theme.Text)
	dimStyle := ctx.Theme.Style(ctx.Theme.Labels)

	// Track current x position for status bar elements
	x := 0

	// Chime indicator, recolored while muted
	if ctx.ChimeReady {
		chimeBg := render.RgbChimeBg
		if ctx.ChimeMuted {
			chimeBg = render.RgbMutedBg
		}
		chimeStyle := tcell.StyleDefault.Foreground(render.RgbBadgeText).Background(chimeBg)
		for _, ch := range parameter.ChimeStr {
			if x >= ctx.Width {
				return // No space left
			}
			buf.Set(x, statusY, ch, chimeStyle)
			x++
		}
	}

	// Freeze indicator
	if ctx.Frozen {
		frozenStyle := tcell.StyleDefault.Foreground(render.RgbBadgeText).Background(render.RgbFrozenBg)
		for _, ch := range parameter.FrozenBadge {
			if x >= ctx.Width {
				return
			}
			buf.Set(x, statusY, ch, frozenStyle)
			x++
		}
	}

	// Digital readout of the displayed time
	layout := parameter.TimeLayout24
	if ctx.TwelveHour {
		layout = parameter.TimeLayout12
	}
	for _, ch := range " " + ctx.Time.Wall.Format(layout) + " " {
		if x >= ctx.Width {
			return
		}
		buf.Set(x, statusY, ch, textStyle)
		x++
	}
	for _, ch := range ctx.Time.Wall.Format(parameter.DateLayout) {
		if x >= ctx.Width {
			return
		}
		buf.Set(x, statusY, ch, dimStyle)
		x++
	}
	leftEndX := x + 1

	// --- RIGHT SIDE ITEMS ---
	// Items are dropped from right (lowest priority) when space is limited

	type statusItem struct {
		text  string
		style tcell.Style
	}
	rightItems := []statusItem{
		{
			text:  fmt.Sprintf(" %s ", ctx.Theme.Name),
			style: tcell.StyleDefault.Foreground(render.RgbBadgeText).Background(ctx.Theme.Face),
		},
		{
			text:  fmt.Sprintf(" %s ", ctx.TickInterval),
			style: dimStyle,
		},
		{
			text:  parameter.HelpHint,
			style: dimStyle,
		},
	}

	// Calculate which items fit, dropping from end (lowest priority)
	availableWidth := ctx.Width - leftEndX
	totalWidth := 0
	fitCount := 0
	for _, item := range rightItems {
		// utf8.RuneCountInString() for correct width calculation versus len()
		itemWidth := utf8.RuneCountInString(item.text)
		if totalWidth+itemWidth <= availableWidth {
			totalWidth += itemWidth
			fitCount++
		} else {
			break
		}
	}

	// Render items that fit, right-aligned
	if fitCount > 0 {
		startX := ctx.Width - totalWidth
		for i := 0; i < fitCount; i++ {
			item := rightItems[i]
			for _, ch := range item.text {
				buf.Set(startX, statusY, ch, item.style)
				startX++
			}
		}
	}
}
