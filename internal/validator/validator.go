package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// TemplateFunc returns the art for a rank at a size
type TemplateFunc func(card.Rank, card.Size) string

// Validator checks that a template catalogue can be drawn without
// breaking column alignment
type Validator struct {
	Template TemplateFunc
	Results  ValidationResults
}

func NewValidator() *Validator {
	return &Validator{
		Template: card.Template,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Template == nil {
		return v.Results, fmt.Errorf("no template catalogue to validate")
	}

	v.validateGlyphs()
	for _, size := range []card.Size{card.Small, card.Normal} {
		for _, rank := range card.Ranks() {
			v.validateDimensions(rank, size)
			v.validatePlaceholders(rank, size)
			v.validateSubstitution(rank, size)
			v.validateLabel(rank, size)
		}
	}

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateGlyphs checks that each glyph has the rune length and display
// width of the placeholder it replaces
func (v *Validator) validateGlyphs() {
	colors := make(map[tcell.Color]card.Suit)
	for _, suit := range card.Suits() {
		for _, size := range []card.Size{card.Small, card.Normal} {
			glyph := card.New(card.Ace, suit, size).Glyph()
			placeholder := card.Placeholder(size)
			if n := utf8.RuneCountInString(glyph); n != len(placeholder) {
				v.errorf("%s %s glyph %q has %d runes, placeholder has %d", size, suit, glyph, n, len(placeholder))
			}
			if w := uniseg.StringWidth(glyph); w != len(placeholder) {
				v.errorf("%s %s glyph %q is %d columns wide, placeholder is %d", size, suit, glyph, w, len(placeholder))
			}
		}

		c := suit.Color()
		if other, ok := colors[c]; ok {
			v.warnf("%s and %s share colour %v", other, suit, c)
		}
		colors[c] = suit
	}
}

// validateDimensions checks the line count and width of a template
func (v *Validator) validateDimensions(rank card.Rank, size card.Size) {
	width, height := size.Dimensions()
	lines := strings.Split(v.Template(rank, size), "\n")
	if len(lines) != height {
		v.errorf("%s %s template has %d lines, expected %d", size, rank, len(lines), height)
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			v.errorf("%s %s template line %d has %d characters, expected %d", size, rank, i+1, n, width)
		}
	}
}

// validatePlaceholders checks that a template marks at least one pip and
// that normal templates only use paired markers
func (v *Validator) validatePlaceholders(rank card.Rank, size card.Size) {
	tmpl := v.Template(rank, size)
	placeholder := card.Placeholder(size)
	if !strings.Contains(tmpl, placeholder) {
		v.errorf("%s %s template has no %q placeholder", size, rank, placeholder)
		return
	}
	if rest := strings.ReplaceAll(tmpl, placeholder, ""); strings.Contains(rest, "x") {
		v.errorf("%s %s template has an unpaired placeholder", size, rank)
	}
}

// validateSubstitution substitutes every suit and compares display widths
func (v *Validator) validateSubstitution(rank card.Rank, size card.Size) {
	width, _ := size.Dimensions()
	tmpl := v.Template(rank, size)
	for _, suit := range card.Suits() {
		glyph := card.New(rank, suit, size).Glyph()
		text := strings.ReplaceAll(tmpl, card.Placeholder(size), glyph)
		for i, line := range strings.Split(text, "\n") {
			if w := uniseg.StringWidth(line); w != width {
				v.errorf("%s %s of %s line %d is %d columns wide after substitution, expected %d",
					size, rank, suit, i+1, w, width)
			}
		}
	}
}

// validateLabel warns when the rank label is missing from its template
func (v *Validator) validateLabel(rank card.Rank, size card.Size) {
	label := string(rank.Symbol())
	if rank == card.Ten {
		label = "10"
	}
	if strings.Count(v.Template(rank, size), label) < 2 {
		v.warnf("%s %s template does not show the %q label in both corners", size, rank, label)
	}
}
