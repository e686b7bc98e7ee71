package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a colour given as #rrggbb (or #rgb), a W3C colour
// name, or "default"
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return tcell.ColorDefault, fmt.Errorf("empty colour")
	case s == "default" || s == "reset":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid colour %q: %v", s, err)
		}
		return FromColorful(c), nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown colour: %q", s)
}

// FromColorful converts a go-colorful colour to a true-colour tcell colour
func FromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
