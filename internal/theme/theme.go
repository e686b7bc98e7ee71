// Package theme defines the page and card colours used when drawing decks.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/gdamore/tcell/v2"
)

// Theme pairs a page background with the style cards are drawn in
type Theme struct {
	Name string
	Page tcell.Color
	Card card.Style
}

// Definition describes a theme by colour names or #rrggbb values. Empty
// card colours keep the card defaults.
type Definition struct {
	Page   string
	CardFG string
	CardBG string
}

var builtinDefinitions = []struct {
	name string
	def  Definition
}{
	{"transparent", Definition{Page: "darkgray"}},
	{"classic", Definition{Page: "white", CardBG: "white"}},
	{"dark", Definition{Page: "black", CardBG: "darkgray"}},
	{"colorful", Definition{Page: "#4682b4", CardBG: "#fffacd"}},
}

// Builtins returns the built-in themes in cycling order
func Builtins() []Theme {
	themes := make([]Theme, 0, len(builtinDefinitions))
	for _, b := range builtinDefinitions {
		t, err := New(b.name, b.def)
		if err != nil {
			panic(fmt.Sprintf("theme: builtin %s: %v", b.name, err))
		}
		themes = append(themes, t)
	}
	return themes
}

// New builds a theme from a definition
func New(name string, def Definition) (Theme, error) {
	t := Theme{Name: name, Page: tcell.ColorDefault}
	if def.Page != "" {
		page, err := ParseColor(def.Page)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: page: %v", name, err)
		}
		t.Page = page
	}
	if def.CardFG != "" {
		fg, err := ParseColor(def.CardFG)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: card_fg: %v", name, err)
		}
		t.Card = t.Card.Foreground(fg)
	}
	if def.CardBG != "" {
		bg, err := ParseColor(def.CardBG)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: card_bg: %v", name, err)
		}
		t.Card = t.Card.Background(bg)
	}
	return t, nil
}

// All returns the built-in themes followed by the custom ones sorted by
// name. A custom theme named like a built-in replaces it in place.
func All(custom map[string]Definition) ([]Theme, error) {
	themes := Builtins()
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, err := New(name, custom[name])
		if err != nil {
			return nil, err
		}
		replaced := false
		for i := range themes {
			if strings.EqualFold(themes[i].Name, name) {
				themes[i] = t
				replaced = true
			}
		}
		if !replaced {
			themes = append(themes, t)
		}
	}
	return themes, nil
}

// Lookup finds a theme by name, case-insensitively
func Lookup(themes []Theme, name string) (Theme, error) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme: %s", name)
}

// PageStyle returns the style used to clear the page behind the cards
func (t Theme) PageStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Page)
}

// Cycle steps through a fixed list of themes, wrapping at the end
type Cycle struct {
	themes []Theme
	idx    int
}

// NewCycle creates a cycle over themes starting at the theme called start.
// An unknown start name begins at the first theme.
func NewCycle(themes []Theme, start string) *Cycle {
	c := &Cycle{themes: themes}
	for i, t := range themes {
		if strings.EqualFold(t.Name, start) {
			c.idx = i
			break
		}
	}
	return c
}

// Current returns the selected theme
func (c *Cycle) Current() Theme {
	if len(c.themes) == 0 {
		return Theme{Name: "none", Page: tcell.ColorDefault}
	}
	return c.themes[c.idx]
}

// Next advances to the following theme and returns it
func (c *Cycle) Next() Theme {
	if len(c.themes) > 0 {
		c.idx = (c.idx + 1) % len(c.themes)
	}
	return c.Current()
}
