package card

import (
	"fmt"
	"strings"
)

// Rank is the face value of a playing card
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Ranks returns all ranks from Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(rankNames))
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Symbol returns the single-character label of the rank
func (r Rank) Symbol() rune {
	switch r {
	case Ace:
		return 'A'
	case Ten:
		return 'T'
	case Jack:
		return 'J'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	if r > Ace && r < Ten {
		return rune('1' + r)
	}
	return '?'
}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// ParseRank parses a rank label ("A", "7", "T" or "10"), or an English name
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	if s == "10" {
		return Ten, nil
	}
	for _, r := range Ranks() {
		if strings.EqualFold(s, string(r.Symbol())) || strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %q", s)
}
