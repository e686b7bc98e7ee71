package card

import (
	"fmt"
	"strings"
)

// Size selects one of the two card templates
type Size uint8

const (
	// Normal cards are 14 columns wide and 9 rows tall
	Normal Size = iota
	// Small cards are 8 columns wide and 5 rows tall
	Small
)

// Dimensions returns the width and height of a card in cells
func (s Size) Dimensions() (int, int) {
	if s == Small {
		return 8, 5
	}
	return 14, 9
}

// Toggle returns the other size
func (s Size) Toggle() Size {
	if s == Small {
		return Normal
	}
	return Small
}

func (s Size) String() string {
	if s == Small {
		return "small"
	}
	return "normal"
}

// ParseSize parses "small" or "normal"
func ParseSize(str string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "small", "s":
		return Small, nil
	case "normal", "n", "":
		return Normal, nil
	}
	return Normal, fmt.Errorf("unknown card size: %q (expected small or normal)", str)
}
