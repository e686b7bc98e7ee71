// Package card draws standard playing cards into character-cell grids.
package card

import "strings"

// Card represents a playing card of a given size
type Card struct {
	Rank  Rank
	Suit  Suit
	Size  Size
	Style Style
}

// New creates a card with no style override
func New(rank Rank, suit Suit, size Size) Card {
	return Card{Rank: rank, Suit: suit, Size: size}
}

// WithStyle returns a copy of the card drawn with style
func (c Card) WithStyle(style Style) Card {
	c.Style = style
	return c
}

// WithSize returns a copy of the card at another size
func (c Card) WithSize(size Size) Card {
	c.Size = size
	return c
}

// Dimensions returns the width and height of the card in cells
func (c Card) Dimensions() (int, int) {
	return c.Size.Dimensions()
}

// Glyph returns the suit glyph drawn at the card's size
func (c Card) Glyph() string {
	if c.Size == Small {
		return string(c.Suit.Symbol())
	}
	return c.Suit.FourColorSymbol()
}

// Text returns the card art with every placeholder replaced by the suit glyph
func (c Card) Text() string {
	return strings.ReplaceAll(Template(c.Rank, c.Size), Placeholder(c.Size), c.Glyph())
}

// Lines returns Text split into rows
func (c Card) Lines() []string {
	return strings.Split(c.Text(), "\n")
}

// String returns the rank label followed by the four-colour suit glyph, e.g. "A♠️"
func (c Card) String() string {
	return string(c.Rank.Symbol()) + c.Suit.FourColorSymbol()
}
