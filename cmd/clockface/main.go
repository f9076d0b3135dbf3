package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clockface/audio"
	"github.com/lixenwraith/clockface/clock"
	"github.com/lixenwraith/clockface/engine"
	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/render"
	"github.com/lixenwraith/clockface/render/renderers"
	"github.com/lixenwraith/clockface/theme"
)

const description = `Full-screen analog clock for the terminal.

The dial fills the window as an aspect-corrected ellipse and redraws
from the wall clock on every tick. Resize the terminal and the clock
follows.

Key bindings:

  q, Q, Esc, Ctrl+C   quit
  -, =, +             shrink / grow the dial
  s                   toggle second hand
  h                   toggle hour marks
  l                   toggle minute marks
  b                   toggle status bar
  t, T                next / previous theme
  space               freeze the displayed time
  m                   mute the chime
  ?                   help overlay
  Ctrl+L              repaint`

// CLI is the flag surface, parsed by kong
type CLI struct {
	Tick time.Duration `help:"Redraw interval, ${min_tick} to ${max_tick}." default:"${default_tick}"`

	Theme      string `help:"Color theme (${theme_names})." default:"${default_theme}"`
	ThemeFile  string `help:"Load additional themes from a TOML file." type:"path" placeholder:"PATH"`
	ListThemes bool   `help:"Print available theme names and exit."`

	HideSecondHand   bool `help:"Start with the second hand hidden."`
	HideHourLabels   bool `help:"Start with the hour marks hidden."`
	ShowMinuteLabels bool `help:"Start with the minute marks shown."`
	HideStatusBar    bool `help:"Start with the status bar hidden."`
	TwelveHour       bool `help:"Use a twelve-hour digital readout."`

	Chime bool `help:"Strike the hour on the speaker."`

	HourLength   float64 `help:"Hour hand length as a fraction of the dial radius." default:"${hour_length}"`
	MinuteLength float64 `help:"Minute hand length as a fraction of the dial radius." default:"${minute_length}"`
	SecondLength float64 `help:"Second hand length as a fraction of the dial radius." default:"${second_length}"`
	Aspect       float64 `help:"Visual width:height ratio of one terminal cell, 1 disables roundness correction." default:"${cell_aspect}"`

	Debug   bool             `help:"Write debug logs to logs/clockface.log."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// validate rejects flag values outside working ranges
func (c *CLI) validate() error {
	if c.Tick < parameter.MinTickInterval || c.Tick > parameter.MaxTickInterval {
		return fmt.Errorf("tick %s out of range [%s, %s]", c.Tick, parameter.MinTickInterval, parameter.MaxTickInterval)
	}

	hands := []struct {
		name  string
		value float64
	}{
		{"hour-length", c.HourLength},
		{"minute-length", c.MinuteLength},
		{"second-length", c.SecondLength},
	}
	for _, hand := range hands {
		if hand.value <= 0 || hand.value > 1 {
			return fmt.Errorf("%s %g out of range (0, 1]", hand.name, hand.value)
		}
	}

	if c.Aspect < parameter.MinCellAspect || c.Aspect > parameter.MaxCellAspect {
		return fmt.Errorf("aspect %g out of range [%g, %g]", c.Aspect, parameter.MinCellAspect, parameter.MaxCellAspect)
	}
	return nil
}

// options maps the flags onto the engine view state
func (c *CLI) options(th theme.Theme) engine.Options {
	return engine.Options{
		TickInterval:     c.Tick,
		Theme:            th,
		HourLength:       c.HourLength,
		MinuteLength:     c.MinuteLength,
		SecondLength:     c.SecondLength,
		Aspect:           c.Aspect,
		Scale:            parameter.MaxDialScale,
		ShowSecondHand:   !c.HideSecondHand,
		ShowHourLabels:   !c.HideHourLabels,
		ShowMinuteLabels: c.ShowMinuteLabels,
		ShowStatusBar:    !c.HideStatusBar,
		TwelveHour:       c.TwelveHour,
	}
}

func main() {
	// Panic Recovery: the terminal is restored by the deferred Fini in
	// run before the crash surfaces here
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCLOCKFACE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clockface: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("clockface"),
		kong.Description(description),
		kong.Vars{
			"version":       version,
			"default_tick":  parameter.DefaultTickInterval.String(),
			"min_tick":      parameter.MinTickInterval.String(),
			"max_tick":      parameter.MaxTickInterval.String(),
			"default_theme": theme.DefaultName,
			"theme_names":   strings.Join(theme.Names(), ", "),
			"hour_length":   ftoa(parameter.HourHandLength),
			"minute_length": ftoa(parameter.MinuteHandLength),
			"second_length": ftoa(parameter.SecondHandLength),
			"cell_aspect":   ftoa(parameter.CellAspect),
		},
	)

	logFile := setupLogging(cli.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if cli.ThemeFile != "" {
		n, err := theme.LoadFile(cli.ThemeFile)
		if err != nil {
			return fmt.Errorf("loading themes: %w", err)
		}
		log.Debug("theme file loaded", "path", cli.ThemeFile, "themes", n)
	}

	if cli.ListThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		return nil
	}

	if err := cli.validate(); err != nil {
		return err
	}

	th, err := theme.Lookup(cli.Theme)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("entering screen mode: %w", err)
	}
	// Normal exit terminal cleanup; also runs while a panic unwinds
	defer screen.Fini()

	chimer := audio.NewChimer(cli.Chime)
	defer chimer.Close()

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)

	// Register renderers in priority order
	type rendererDef struct {
		renderer render.Renderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewDialRenderer(), render.PriorityDial},
		{renderers.NewLabelsRenderer(), render.PriorityLabels},
		{renderers.NewHandsRenderer(), render.PriorityHands},
		{renderers.NewPivotRenderer(), render.PriorityPivot},
		{renderers.NewStatusBarRenderer(), render.PriorityUI},
		{renderers.NewHelpOverlayRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	source := clock.NewFrozenClock(clock.NewTimeProvider())
	eng := engine.New(screen, orchestrator, source, chimer, cli.options(th))

	return eng.Run()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
