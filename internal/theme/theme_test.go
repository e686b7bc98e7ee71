package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBuiltins(t *testing.T) {
	themes := Builtins()
	names := []string{"transparent", "classic", "dark", "colorful"}
	if len(themes) != len(names) {
		t.Fatalf("expected %d themes, got %d", len(names), len(themes))
	}
	for i, name := range names {
		if themes[i].Name != name {
			t.Errorf("theme %d: expected %s, got %s", i, name, themes[i].Name)
		}
	}

	if _, ok := themes[0].Card.Bg(); ok {
		t.Errorf("transparent theme must not set a card background")
	}
	if bg, ok := themes[3].Card.Bg(); !ok || bg != tcell.NewRGBColor(255, 250, 205) {
		t.Errorf("colorful theme: unexpected card background %v", bg)
	}
	if themes[3].Page != tcell.NewRGBColor(70, 130, 180) {
		t.Errorf("colorful theme: unexpected page %v", themes[3].Page)
	}
}

func TestCycleWraps(t *testing.T) {
	c := NewCycle(Builtins(), "dark")
	if c.Current().Name != "dark" {
		t.Fatalf("expected to start at dark, got %s", c.Current().Name)
	}
	if got := c.Next().Name; got != "colorful" {
		t.Fatalf("expected colorful, got %s", got)
	}
	if got := c.Next().Name; got != "transparent" {
		t.Fatalf("expected wrap to transparent, got %s", got)
	}

	if got := NewCycle(Builtins(), "missing").Current().Name; got != "transparent" {
		t.Fatalf("unknown start should select the first theme, got %s", got)
	}
	if got := NewCycle(nil, "").Next().Name; got != "none" {
		t.Fatalf("empty cycle should return a placeholder theme, got %s", got)
	}
}

func TestAllWithCustom(t *testing.T) {
	themes, err := All(map[string]Definition{
		"sepia":   {Page: "#704214", CardFG: "black", CardBG: "wheat"},
		"Classic": {Page: "navy"},
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(themes) != 5 {
		t.Fatalf("expected 5 themes, got %d", len(themes))
	}
	if themes[1].Page != tcell.ColorNavy {
		t.Fatalf("expected classic to be overridden in place, got page %v", themes[1].Page)
	}
	sepia, err := Lookup(themes, "SEPIA")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if fg, ok := sepia.Card.Fg(); !ok || fg != tcell.ColorBlack {
		t.Fatalf("expected black card foreground, got %v", fg)
	}
	if _, err := Lookup(themes, "neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}

	if _, err := All(map[string]Definition{"bad": {Page: "#zzz"}}); err == nil {
		t.Fatalf("expected error for invalid colour")
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]tcell.Color{
		"#ff0000": tcell.NewRGBColor(255, 0, 0),
		"#0F0":    tcell.NewRGBColor(0, 255, 0),
		"red":     tcell.ColorRed,
		" Navy ":  tcell.ColorNavy,
		"default": tcell.ColorDefault,
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseColor(%q): expected %v, got %v", in, want, got)
		}
	}
	for _, in := range []string{"", "#12", "chartreuse-ish"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestPageStyle(t *testing.T) {
	th, _ := Lookup(Builtins(), "dark")
	_, bg, _ := th.PageStyle().Decompose()
	if bg != tcell.ColorBlack {
		t.Fatalf("expected black page, got %v", bg)
	}
}
