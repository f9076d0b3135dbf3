package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/theme"
)

// inputResult tells the loop what a handled event requires
type inputResult int

const (
	inputNone inputResult = iota
	inputRedraw
	inputQuit
)

// handleEvent dispatches one terminal event
func (e *Engine) handleEvent(ev tcell.Event) inputResult {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return e.handleKey(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		e.orchestrator.Resize(w, h)
		return inputRedraw

	case *tcell.EventError:
		e.err = fmt.Errorf("terminal error: %s", ev.Error())
		return inputQuit
	}
	return inputNone
}

func (e *Engine) handleKey(ev *tcell.EventKey) inputResult {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return inputQuit

	case tcell.KeyCtrlL:
		e.screen.Sync()
		return inputRedraw

	case tcell.KeyRune:
		return e.handleRune(ev.Rune())
	}
	return inputNone
}

func (e *Engine) handleRune(r rune) inputResult {
	switch r {
	case 'q', 'Q':
		return inputQuit

	case '-':
		e.opts.Scale -= parameter.DialScaleStep
		if e.opts.Scale < parameter.MinDialScale {
			e.opts.Scale = parameter.MinDialScale
		}
		return inputRedraw

	case '=', '+':
		e.opts.Scale += parameter.DialScaleStep
		if e.opts.Scale > parameter.MaxDialScale {
			e.opts.Scale = parameter.MaxDialScale
		}
		return inputRedraw

	case 's':
		e.opts.ShowSecondHand = !e.opts.ShowSecondHand
		return inputRedraw

	case 'h':
		e.opts.ShowHourLabels = !e.opts.ShowHourLabels
		return inputRedraw

	case 'l':
		e.opts.ShowMinuteLabels = !e.opts.ShowMinuteLabels
		return inputRedraw

	case 'b':
		e.opts.ShowStatusBar = !e.opts.ShowStatusBar
		return inputRedraw

	case 't':
		e.opts.Theme = theme.Next(e.opts.Theme.Name)
		return inputRedraw

	case 'T':
		e.opts.Theme = theme.Previous(e.opts.Theme.Name)
		return inputRedraw

	case ' ':
		e.source.Toggle()
		return inputRedraw

	case 'm':
		e.chimer.ToggleMute()
		return inputRedraw

	case '?':
		e.showHelp = !e.showHelp
		return inputRedraw
	}
	return inputNone
}
