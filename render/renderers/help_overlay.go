package renderers

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
)

// helpBinding is one key row of the overlay
type helpBinding struct {
	key  string
	desc string
}

var helpBindings = []helpBinding{
	{"q Esc", "quit"},
	{"- =", "shrink / grow the dial"},
	{"s", "toggle second hand"},
	{"h", "toggle hour marks"},
	{"l", "toggle minute marks"},
	{"b", "toggle status bar"},
	{"t T", "next / previous theme"},
	{"space", "freeze the displayed time"},
	{"m", "mute the chime"},
	{"^L", "repaint the screen"},
	{"?", "close this help"},
}

// HelpOverlayRenderer draws the centered key binding window
type HelpOverlayRenderer struct{}

// NewHelpOverlayRenderer creates a help overlay renderer
func NewHelpOverlayRenderer() *HelpOverlayRenderer {
	return &HelpOverlayRenderer{}
}

// Name implements Renderer
func (r *HelpOverlayRenderer) Name() string { return "help_overlay" }

// Render implements Renderer
func (r *HelpOverlayRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Degenerate() || !ctx.ShowHelp {
		return
	}

	keyWidth := 0
	descWidth := 0
	for _, b := range helpBindings {
		if w := utf8.RuneCountInString(b.key); w > keyWidth {
			keyWidth = w
		}
		if w := utf8.RuneCountInString(b.desc); w > descWidth {
			descWidth = w
		}
	}

	contentWidth := keyWidth + 2 + descWidth
	overlayWidth := contentWidth + 2 + 2*parameter.OverlayPaddingX
	overlayHeight := len(helpBindings) + 2

	// Centered; on screens smaller than the window the edges clip
	startX := (ctx.Width - overlayWidth) / 2
	startY := (ctx.Height - overlayHeight) / 2

	bgStyle := tcell.StyleDefault.Foreground(render.RgbOverlayText).Background(render.RgbOverlayBg)
	borderStyle := tcell.StyleDefault.Foreground(render.RgbOverlayBorder).Background(render.RgbOverlayBg)
	keyStyle := tcell.StyleDefault.Foreground(render.RgbOverlayKey).Background(render.RgbOverlayBg)

	// 1. Background
	for y := 0; y < overlayHeight; y++ {
		for x := 0; x < overlayWidth; x++ {
			buf.Set(startX+x, startY+y, ' ', bgStyle)
		}
	}

	// 2. Border and title
	r.drawBorder(buf, startX, startY, overlayWidth, overlayHeight, borderStyle)

	// 3. Key rows: right-aligned key column, then description
	for i, b := range helpBindings {
		y := startY + 1 + i
		x := startX + 1 + parameter.OverlayPaddingX + keyWidth - utf8.RuneCountInString(b.key)
		for _, ch := range b.key {
			buf.Set(x, y, ch, keyStyle)
			x++
		}
		x = startX + 1 + parameter.OverlayPaddingX + keyWidth + 2
		for _, ch := range b.desc {
			buf.Set(x, y, ch, bgStyle)
			x++
		}
	}
}

func (r *HelpOverlayRenderer) drawBorder(buf *render.Buffer, x, y, w, h int, style tcell.Style) {
	// Corners
	buf.Set(x, y, '╔', style)
	buf.Set(x+w-1, y, '╗', style)
	buf.Set(x, y+h-1, '╚', style)
	buf.Set(x+w-1, y+h-1, '╝', style)

	// Horizontal lines
	for i := 1; i < w-1; i++ {
		buf.Set(x+i, y, '═', style)
		buf.Set(x+i, y+h-1, '═', style)
	}

	// Vertical lines
	for i := 1; i < h-1; i++ {
		buf.Set(x, y+i, '║', style)
		buf.Set(x+w-1, y+i, '║', style)
	}

	// Title centered in the top border
	tx := x + (w-utf8.RuneCountInString(parameter.OverlayTitle))/2
	for _, ch := range parameter.OverlayTitle {
		buf.Set(tx, y, ch, style)
		tx++
	}
}
