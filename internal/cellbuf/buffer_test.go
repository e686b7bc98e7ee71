package cellbuf

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetAndGet(t *testing.T) {
	b := NewBuffer(4, 2)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	b.SetContent(1, 1, 'x', nil, style)

	mainc, combc, got, width := b.GetContent(1, 1)
	if mainc != 'x' || len(combc) != 0 || got != style || width != 1 {
		t.Fatalf("unexpected cell: %q %v %v %d", mainc, combc, got, width)
	}
	if line := b.Line(1); line != " x  " {
		t.Fatalf("expected %q, got %q", " x  ", line)
	}
}

func TestBufferIgnoresOutOfBounds(t *testing.T) {
	b := NewBuffer(3, 3)
	b.SetContent(-1, 0, 'x', nil, tcell.StyleDefault)
	b.SetContent(3, 0, 'x', nil, tcell.StyleDefault)
	b.SetContent(0, 3, 'x', nil, tcell.StyleDefault)
	if got := b.String(); got != "   \n   \n   " {
		t.Fatalf("out-of-bounds writes changed the buffer: %q", got)
	}
	if mainc, _, _, _ := b.GetContent(10, 10); mainc != ' ' {
		t.Fatalf("expected blank for out-of-bounds read, got %q", mainc)
	}
}

func TestBufferWideCluster(t *testing.T) {
	b := NewBuffer(4, 1)
	b.Fill('.', tcell.StyleDefault)
	b.SetContent(1, 0, '♥', []rune{0xFE0F}, tcell.StyleDefault)

	if c := b.Cell(1, 0); c.Width != 2 {
		t.Fatalf("expected width 2, got %d", c.Width)
	}
	if c := b.Cell(2, 0); c.Width != 0 {
		t.Fatalf("expected continuation cell, got width %d", c.Width)
	}
	if got := b.Line(0); got != ".\u2665\ufe0f." {
		t.Fatalf("unexpected line %q", got)
	}

	// Overwriting the continuation breaks the wide cluster.
	b.SetContent(2, 0, 'a', nil, tcell.StyleDefault)
	if got := b.Line(0); got != ". a." {
		t.Fatalf("unexpected line after overwrite %q", got)
	}
}

func TestBufferNarrowOverWide(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetContent(0, 0, '\U0001F537', []rune{0xFE0F}, tcell.StyleDefault)
	b.SetContent(0, 0, 'z', nil, tcell.StyleDefault)
	if got := b.Line(0); got != "z   " {
		t.Fatalf("unexpected line %q", got)
	}
	if c := b.Cell(1, 0); c.Width != 1 {
		t.Fatalf("expected continuation to be released, got width %d", c.Width)
	}
}

func TestBufferCopiesCombining(t *testing.T) {
	b := NewBuffer(2, 1)
	comb := []rune{0x301}
	b.SetContent(0, 0, 'e', comb, tcell.StyleDefault)
	comb[0] = 'X'
	if c := b.Cell(0, 0); c.Comb[0] != 0x301 {
		t.Fatalf("buffer must not alias the caller's slice")
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetContent(0, 0, 'x', nil, tcell.StyleDefault)
	b.Resize(3, 1)
	if w, h := b.Size(); w != 3 || h != 1 {
		t.Fatalf("expected 3x1, got %dx%d", w, h)
	}
	if got := b.Line(0); got != "   " {
		t.Fatalf("expected cleared buffer, got %q", got)
	}
	if area := b.Area(); area != NewRect(0, 0, 3, 1) {
		t.Fatalf("unexpected area %+v", area)
	}
}
