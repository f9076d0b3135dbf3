package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// themeSpec is one [[theme]] table in a theme file. Colors are #RRGGBB
// hex strings. face, hour, minute and second are required; labels
// defaults to face, text to face, pivot to text, and background to the
// terminal's own background
type themeSpec struct {
	Name       string `toml:"name"`
	Face       string `toml:"face"`
	Hour       string `toml:"hour"`
	Minute     string `toml:"minute"`
	Second     string `toml:"second"`
	Labels     string `toml:"labels"`
	Pivot      string `toml:"pivot"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

type themeFile struct {
	Themes []themeSpec `toml:"theme"`
}

// LoadFile registers every theme found in a TOML file and returns how
// many there were. A loaded theme sharing a builtin name replaces the
// builtin
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("theme file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("theme file %s: %w", path, err)
	}
	for _, t := range loaded {
		Register(t)
	}
	return len(loaded), nil
}

// Parse decodes TOML theme definitions without registering them
func Parse(data []byte) ([]Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Themes) == 0 {
		return nil, fmt.Errorf("no [[theme]] tables found")
	}

	out := make([]Theme, 0, len(file.Themes))
	for i, spec := range file.Themes {
		t, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("theme %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s themeSpec) build() (Theme, error) {
	if s.Name == "" {
		return Theme{}, fmt.Errorf("missing name")
	}
	t := Theme{Name: s.Name}

	required := []struct {
		field string
		value string
		dst   *tcell.Color
	}{
		{"face", s.Face, &t.Face},
		{"hour", s.Hour, &t.HourHand},
		{"minute", s.Minute, &t.MinuteHand},
		{"second", s.Second, &t.SecondHand},
	}
	for _, r := range required {
		if r.value == "" {
			return Theme{}, fmt.Errorf("%s: missing color", r.field)
		}
		c, err := ParseColor(r.value)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", r.field, err)
		}
		*r.dst = c
	}

	var err error
	if t.Text, err = optionalColor(s.Text, t.Face); err != nil {
		return Theme{}, fmt.Errorf("text: %w", err)
	}
	if t.Labels, err = optionalColor(s.Labels, t.Face); err != nil {
		return Theme{}, fmt.Errorf("labels: %w", err)
	}
	if t.Pivot, err = optionalColor(s.Pivot, t.Text); err != nil {
		return Theme{}, fmt.Errorf("pivot: %w", err)
	}
	if t.Background, err = optionalColor(s.Background, tcell.ColorDefault); err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}
	return t, nil
}

func optionalColor(value string, fallback tcell.Color) (tcell.Color, error) {
	if value == "" {
		return fallback, nil
	}
	return ParseColor(value)
}

// ParseColor converts a #RRGGBB hex string to a tcell color
func ParseColor(s string) (tcell.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
