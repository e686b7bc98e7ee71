package card

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Suit is one of the four French suits
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits returns all suits in deck order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Color returns the suit colour of a four-colour deck
func (s Suit) Color() tcell.Color {
	switch s {
	case Hearts:
		return tcell.ColorRed
	case Diamonds:
		return tcell.ColorBlue
	case Clubs:
		return tcell.ColorGreen
	}
	return tcell.ColorBlack
}

// Symbol returns the single-column suit glyph
func (s Suit) Symbol() rune {
	switch s {
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	}
	return '♠'
}

// ColoredSymbol returns the suit glyph with emoji presentation
func (s Suit) ColoredSymbol() string {
	switch s {
	case Hearts:
		return "\u2665\ufe0f"
	case Diamonds:
		return "\u2666\ufe0f"
	case Clubs:
		return "\u2663\ufe0f"
	}
	return "\u2660\ufe0f"
}

// FourColorSymbol returns the two-rune glyph sequence drawn on normal
// size cards. Clubs and diamonds use a shamrock and a blue diamond so
// every suit keeps a distinct colour in emoji fonts too.
func (s Suit) FourColorSymbol() string {
	switch s {
	case Hearts:
		return "\u2665\ufe0f"
	case Diamonds:
		return "\U0001f537\ufe0f"
	case Clubs:
		return "\u2618\ufe0f"
	}
	return "\u2660\ufe0f"
}

// Letter returns the suit initial used in card ids
func (s Suit) Letter() rune {
	return rune(s.String()[0])
}

// ParseSuit parses a suit letter, name or glyph
func ParseSuit(str string) (Suit, error) {
	str = strings.TrimSpace(str)
	for _, s := range Suits() {
		switch {
		case strings.EqualFold(str, string(s.Letter())),
			strings.EqualFold(str, s.String()),
			strings.EqualFold(str, strings.TrimSuffix(s.String(), "s")),
			str == string(s.Symbol()),
			str == s.ColoredSymbol(),
			str == s.FourColorSymbol():
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %q", str)
}
