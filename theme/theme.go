package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultName is the theme used when none is requested
const DefaultName = "nord-frost"

// Theme defines semantic colors for the clock scene
type Theme struct {
	Name string

	Face       tcell.Color // dial outline
	HourHand   tcell.Color
	MinuteHand tcell.Color
	SecondHand tcell.Color
	Labels     tcell.Color // hour and minute marks
	Pivot      tcell.Color // hand hub at the dial center
	Background tcell.Color
	Text       tcell.Color // status bar and overlay text
}

// Style returns the style for fg drawn over the theme background
func (t Theme) Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(t.Background)
}

// Builtin themes. The nord pair follows https://www.nordtheme.com/,
// tokyo-night matches the upstream terminal palette, mono stays near
// plain monochrome output
var themes = []Theme{
	{
		Name:       "nord-frost",
		Face:       tcell.NewRGBColor(143, 188, 187), // #8FBCBB
		HourHand:   tcell.NewRGBColor(94, 129, 172),  // #5E81AC
		MinuteHand: tcell.NewRGBColor(129, 161, 193), // #81A1C1
		SecondHand: tcell.NewRGBColor(136, 192, 208), // #88C0D0
		Labels:     tcell.NewRGBColor(143, 188, 187), // #8FBCBB
		Pivot:      tcell.NewRGBColor(236, 239, 244), // #ECEFF4
		Background: tcell.NewRGBColor(46, 52, 64),    // #2E3440
		Text:       tcell.NewRGBColor(216, 222, 233), // #D8DEE9
	},
	{
		Name:       "nord-aurora",
		Face:       tcell.NewRGBColor(180, 142, 173), // #B48EAD
		HourHand:   tcell.NewRGBColor(191, 97, 106),  // #BF616A
		MinuteHand: tcell.NewRGBColor(208, 135, 112), // #D08770
		SecondHand: tcell.NewRGBColor(235, 203, 139), // #EBCB8B
		Labels:     tcell.NewRGBColor(180, 142, 173), // #B48EAD
		Pivot:      tcell.NewRGBColor(236, 239, 244), // #ECEFF4
		Background: tcell.NewRGBColor(46, 52, 64),    // #2E3440
		Text:       tcell.NewRGBColor(216, 222, 233), // #D8DEE9
	},
	{
		Name:       "tokyo-night",
		Face:       tcell.NewRGBColor(86, 95, 137),   // #565F89
		HourHand:   tcell.NewRGBColor(122, 162, 247), // #7AA2F7
		MinuteHand: tcell.NewRGBColor(125, 207, 255), // #7DCFFF
		SecondHand: tcell.NewRGBColor(247, 118, 142), // #F7768E
		Labels:     tcell.NewRGBColor(59, 66, 97),    // #3B4261
		Pivot:      tcell.NewRGBColor(192, 202, 245), // #C0CAF5
		Background: tcell.NewRGBColor(26, 27, 38),    // #1A1B26
		Text:       tcell.NewRGBColor(169, 177, 214), // #A9B1D6
	},
	{
		Name:       "mono",
		Face:       tcell.NewRGBColor(160, 160, 160),
		HourHand:   tcell.NewRGBColor(255, 255, 255),
		MinuteHand: tcell.NewRGBColor(220, 220, 220),
		SecondHand: tcell.NewRGBColor(160, 160, 160),
		Labels:     tcell.NewRGBColor(128, 128, 128),
		Pivot:      tcell.NewRGBColor(255, 255, 255),
		Background: tcell.NewRGBColor(0, 0, 0),
		Text:       tcell.NewRGBColor(200, 200, 200),
	},
}

// Default returns the default theme
func Default() Theme {
	t, err := Lookup(DefaultName)
	if err != nil {
		return themes[0]
	}
	return t
}

// All returns the registered themes in cycle order
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Names returns the registered theme names, sorted
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}

// Lookup finds a theme by name
func Lookup(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Register adds a theme to the cycle. A theme sharing a registered name
// replaces it in place
func Register(t Theme) {
	for i, existing := range themes {
		if existing.Name == t.Name {
			themes[i] = t
			return
		}
	}
	themes = append(themes, t)
}

// Next returns the theme after name in cycle order, wrapping around.
// Unknown names restart the cycle
func Next(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// Previous returns the theme before name in cycle order, wrapping around
func Previous(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+len(themes)-1)%len(themes)]
		}
	}
	return themes[0]
}
