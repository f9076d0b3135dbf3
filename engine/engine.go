package engine

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/audio"
	"github.com/lixenwraith/clockface/clock"
	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
	"github.com/lixenwraith/clockface/vmath"
)

// Engine owns the tick loop: each tick it reads the clock and the
// terminal size, fits the dial and drives the render pipeline. It runs
// until a quit key, a termination signal or a terminal error
type Engine struct {
	screen       tcell.Screen
	orchestrator *render.Orchestrator
	source       *clock.FrozenClock
	chimer       *audio.Chimer

	opts     Options
	showHelp bool
	err      error
}

// New assembles an engine. opts is normalized into working ranges
func New(screen tcell.Screen, orch *render.Orchestrator, source *clock.FrozenClock, chimer *audio.Chimer, opts Options) *Engine {
	return &Engine{
		screen:       screen,
		orchestrator: orch,
		source:       source,
		chimer:       chimer,
		opts:         opts.normalized(),
	}
}

// Run drives the loop until exit. The caller finalizes the screen.
// A nil return is a user quit or signal, non-nil a terminal failure
func (e *Engine) Run() error {
	events := make(chan tcell.Event, parameter.EventChanSize)
	go func() {
		for {
			ev := e.screen.PollEvent()
			// nil marks the event stream closed by Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Ticks align to wall-clock boundaries of the interval, so a one
	// second tick redraws on the second change
	timer := time.NewTimer(nextTickIn(time.Now(), e.opts.TickInterval))
	defer timer.Stop()

	log.Debug("engine started", "tick", e.opts.TickInterval, "theme", e.opts.Theme.Name)
	e.renderFrame()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return e.err
			}
			switch e.handleEvent(ev) {
			case inputQuit:
				return e.err
			case inputRedraw:
				e.renderFrame()
			}

		case sig := <-sigChan:
			log.Debug("engine stopping on signal", "signal", sig)
			return e.err

		case <-timer.C:
			e.renderFrame()
			timer.Reset(nextTickIn(time.Now(), e.opts.TickInterval))
		}
	}
}

// renderFrame rasterizes one frame from the displayed time and the
// current terminal size
func (e *Engine) renderFrame() {
	width, height := e.screen.Size()

	// Hands sweep only when redrawing faster than they move
	smooth := e.opts.TickInterval < time.Second
	snap := clock.TakeSnapshot(e.source.Now(), smooth)

	// The chime follows the displayed hour, so frozen time stays silent
	e.chimer.Observe(snap.Hour)

	dialHeight := height
	if e.opts.ShowStatusBar {
		dialHeight = height - 1
	}

	ctx := render.Context{
		Time:             snap,
		Width:            width,
		Height:           height,
		Dial:             vmath.FitDial(width, dialHeight, parameter.DialMargin, e.opts.Aspect, e.opts.Scale),
		Theme:            e.opts.Theme,
		HourLength:       e.opts.HourLength,
		MinuteLength:     e.opts.MinuteLength,
		SecondLength:     e.opts.SecondLength,
		ShowSecondHand:   e.opts.ShowSecondHand,
		ShowHourLabels:   e.opts.ShowHourLabels,
		ShowMinuteLabels: e.opts.ShowMinuteLabels,
		ShowStatusBar:    e.opts.ShowStatusBar,
		ShowHelp:         e.showHelp,
		Frozen:           e.source.IsFrozen(),
		ChimeReady:       e.chimer.Ready(),
		ChimeMuted:       e.chimer.Muted(),
		TwelveHour:       e.opts.TwelveHour,
		TickInterval:     e.opts.TickInterval,
	}
	e.orchestrator.RenderFrame(ctx)
}

// nextTickIn returns the wait until the next wall-aligned boundary of
// the interval
func nextTickIn(now time.Time, interval time.Duration) time.Duration {
	next := now.Truncate(interval).Add(interval)
	d := next.Sub(now)
	if d <= 0 {
		d = interval
	}
	return d
}
