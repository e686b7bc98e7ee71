package card

import "strings"

// Placeholder markers replaced by the suit glyph. Each marker has the same
// rune length as its replacement, so substitution never shifts the
// characters that follow it on a line.
const (
	smallPlaceholder  = "x"
	normalPlaceholder = "xx"
)

// Placeholder returns the marker substituted in templates of size
func Placeholder(size Size) string {
	if size == Small {
		return smallPlaceholder
	}
	return normalPlaceholder
}

// Template returns the card art for rank at size. Every line of a
// template is exactly as wide as the size and there is one line per row.
func Template(rank Rank, size Size) string {
	var t string
	if size == Small {
		if int(rank) < len(smallTemplates) {
			t = smallTemplates[rank]
		}
	} else if int(rank) < len(normalTemplates) {
		t = normalTemplates[rank]
	}
	// The literals open with a newline so the art lines up in source.
	return strings.TrimPrefix(t, "\n")
}

var smallTemplates = [...]string{
	Ace: `
╭──────╮
│Ax  x │
│      │
│ x  xA│
╰──────╯`,
	Two: `
╭──────╮
│2x  x │
│      │
│ x  x2│
╰──────╯`,
	Three: `
╭──────╮
│3x  x │
│      │
│ x  x3│
╰──────╯`,
	Four: `
╭──────╮
│4x  x │
│      │
│ x  x4│
╰──────╯`,
	Five: `
╭──────╮
│5x  x │
│      │
│ x  x5│
╰──────╯`,
	Six: `
╭──────╮
│6x  x │
│      │
│ x  x6│
╰──────╯`,
	Seven: `
╭──────╮
│7x  x │
│      │
│ x  x7│
╰──────╯`,
	Eight: `
╭──────╮
│8x  x │
│      │
│ x  x8│
╰──────╯`,
	Nine: `
╭──────╮
│9x  x │
│      │
│ x  x9│
╰──────╯`,
	Ten: `
╭──────╮
│10  x │
│      │
│ x  10│
╰──────╯`,
	Jack: `
╭──────╮
│Jx    │
│  JJ  │
│    xJ│
╰──────╯`,
	Queen: `
╭──────╮
│Qx    │
│  QQ  │
│    xQ│
╰──────╯`,
	King: `
╭──────╮
│Kx    │
│  KK  │
│    xK│
╰──────╯`,
}

var normalTemplates = [...]string{
	Ace: `
╭────────────╮
│ A          │
│            │
│            │
│     xx     │
│            │
│            │
│          A │
╰────────────╯`,
	Two: `
╭────────────╮
│ 2   xx     │
│            │
│            │
│            │
│            │
│            │
│     xx   2 │
╰────────────╯`,
	Three: `
╭────────────╮
│ 3   xx     │
│            │
│            │
│     xx     │
│            │
│            │
│     xx   3 │
╰────────────╯`,
	Four: `
╭────────────╮
│ 4xx    xx  │
│            │
│            │
│            │
│            │
│            │
│  xx    xx4 │
╰────────────╯`,
	Five: `
╭────────────╮
│ 5xx    xx  │
│            │
│            │
│     xx     │
│            │
│            │
│  xx    xx5 │
╰────────────╯`,
	Six: `
╭────────────╮
│ 6xx    xx  │
│            │
│            │
│  xx    xx  │
│            │
│            │
│  xx    xx6 │
╰────────────╯`,
	Seven: `
╭────────────╮
│ 7xx    xx  │
│            │
│     xx     │
│  xx    xx  │
│            │
│            │
│  xx    xx7 │
╰────────────╯`,
	Eight: `
╭────────────╮
│ 8xx    xx  │
│            │
│     xx     │
│  xx    xx  │
│     xx     │
│            │
│  xx    xx8 │
╰────────────╯`,
	Nine: `
╭────────────╮
│ 9xx    xx  │
│            │
│  xx    xx  │
│     xx     │
│  xx    xx  │
│            │
│  xx    xx9 │
╰────────────╯`,
	Ten: `
╭────────────╮
│10xx    xx  │
│     xx     │
│  xx    xx  │
│            │
│  xx    xx  │
│     xx     │
│  xx    xx10│
╰────────────╯`,
	Jack: `
╭────────────╮
│ Jxx        │
│       JJ   │
│       JJ   │
│       JJ   │
│  JJ   JJ   │
│   JJJJJ    │
│        xxJ │
╰────────────╯`,
	Queen: `
╭────────────╮
│ Qxx        │
│   QQQQQ    │
│  QQ   QQ   │
│  QQ   QQ   │
│  QQ   QQ   │
│   QQQQ  Q  │
│        xxQ │
╰────────────╯`,
	King: `
╭────────────╮
│ Kxx        │
│  KK    KK  │
│  KK   KK   │
│  KK KK     │
│  KK   KK   │
│  KK    KK  │
│        xxK │
╰────────────╯`,
}
