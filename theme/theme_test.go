package theme

import (
	"sort"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"nord-frost", "nord-aurora", "tokyo-night", "mono"} {
		th, err := Lookup(name)
		if err != nil {
			t.Errorf("Expected builtin %q, got error: %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("Expected name %q, got %q", name, th.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-theme")
	if err == nil {
		t.Fatal("Expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "no-such-theme") {
		t.Errorf("Expected error to name the theme, got: %v", err)
	}
	if !strings.Contains(err.Error(), DefaultName) {
		t.Errorf("Expected error to list available themes, got: %v", err)
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Name; got != DefaultName {
		t.Errorf("Expected default theme %q, got %q", DefaultName, got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("Expected at least the builtin themes, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestCycle(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatal("Expected at least two themes to cycle")
	}

	// A full walk with Next returns to the start
	current := all[0].Name
	for range all {
		current = Next(current).Name
	}
	if current != all[0].Name {
		t.Errorf("Expected cycle to return to %q, got %q", all[0].Name, current)
	}

	// Previous undoes Next for every theme
	for _, th := range all {
		if got := Previous(Next(th.Name).Name).Name; got != th.Name {
			t.Errorf("Expected Previous(Next(%q)) = %q, got %q", th.Name, th.Name, got)
		}
	}

	// Unknown names restart the cycle
	if got := Next("no-such-theme").Name; got != all[0].Name {
		t.Errorf("Expected unknown name to restart cycle, got %q", got)
	}
}

func TestRegister(t *testing.T) {
	first := Theme{Name: "register-test", Face: tcell.NewRGBColor(1, 2, 3)}
	Register(first)

	th, err := Lookup("register-test")
	if err != nil {
		t.Fatalf("Expected registered theme, got error: %v", err)
	}
	if th.Face != first.Face {
		t.Error("Expected registered face color")
	}

	// Same name replaces in place without growing the cycle
	before := len(All())
	second := Theme{Name: "register-test", Face: tcell.NewRGBColor(4, 5, 6)}
	Register(second)
	if len(All()) != before {
		t.Errorf("Expected replacement to keep %d themes, got %d", before, len(All()))
	}
	th, _ = Lookup("register-test")
	if th.Face != second.Face {
		t.Error("Expected replacement face color")
	}
}

func TestStyle(t *testing.T) {
	th := Default()
	fg, bg, _ := th.Style(th.HourHand).Decompose()
	if fg != th.HourHand {
		t.Errorf("Expected foreground %v, got %v", th.HourHand, fg)
	}
	if bg != th.Background {
		t.Errorf("Expected background %v, got %v", th.Background, bg)
	}
}
