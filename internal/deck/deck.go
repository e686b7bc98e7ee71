package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/cellbuf"
	"github.com/arcanaland/tuicards/internal/layout"
)

// Deck represents the 52 cards of a standard deck drawn at one size
type Deck struct {
	Size  card.Size
	Style card.Style

	// Cards in deck order: suit by suit, Ace to King within a suit
	Cards []card.Card
}

// New creates a deck of unstyled cards at size
func New(size card.Size) *Deck {
	d := &Deck{Size: size}
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d.Cards = append(d.Cards, card.New(rank, suit, size))
		}
	}
	return d
}

// WithStyle returns a copy of the deck with style applied to every card
func (d *Deck) WithStyle(style card.Style) *Deck {
	out := &Deck{Size: d.Size, Style: style, Cards: make([]card.Card, len(d.Cards))}
	for i, c := range d.Cards {
		out.Cards[i] = c.WithStyle(style)
	}
	return out
}

// WithSize returns a copy of the deck with every card at size
func (d *Deck) WithSize(size card.Size) *Deck {
	out := &Deck{Size: size, Style: d.Style, Cards: make([]card.Card, len(d.Cards))}
	for i, c := range d.Cards {
		out.Cards[i] = c.WithSize(size)
	}
	return out
}

// GetCard gets a card by its id, e.g. "AS", "10h" or "qd"
func (d *Deck) GetCard(cardID string) (card.Card, error) {
	rank, suit, err := ParseCardID(cardID)
	if err != nil {
		return card.Card{}, err
	}
	for _, c := range d.Cards {
		if c.Rank == rank && c.Suit == suit {
			return c, nil
		}
	}
	return card.Card{}, fmt.Errorf("card not found: %s", cardID)
}

// Render lays the cards out on a grid inside area and draws as many as
// fit. It returns the number of cards drawn.
func (d *Deck) Render(area cellbuf.Rect, s cellbuf.Surface) int {
	w, h := d.Size.Dimensions()
	cells := layout.Grid(area, w, h)
	n := min(len(cells), len(d.Cards))
	for i := 0; i < n; i++ {
		d.Cards[i].Render(cells[i], s)
	}
	return n
}

// ID returns the canonical id of a card: rank label followed by suit letter
func ID(c card.Card) string {
	return string(c.Rank.Symbol()) + string(c.Suit.Letter())
}

// ParseCardID splits a card id into rank and suit. The suit is the last
// character; everything before it is the rank.
func ParseCardID(cardID string) (card.Rank, card.Suit, error) {
	id := []rune(strings.TrimSpace(cardID))
	if len(id) < 2 {
		return 0, 0, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	// Suit glyphs may carry a variation selector.
	suitStart := len(id) - 1
	if id[suitStart] == '\ufe0f' && suitStart > 1 {
		suitStart--
	}

	rank, err := card.ParseRank(string(id[:suitStart]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid card ID %s: %v", cardID, err)
	}
	suit, err := card.ParseSuit(string(id[suitStart:]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid card ID %s: %v", cardID, err)
	}
	return rank, suit, nil
}
