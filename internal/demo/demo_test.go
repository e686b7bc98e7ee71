package demo

import (
	"testing"
	"time"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/config"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func defaultKeys(t *testing.T) Keys {
	t.Helper()
	keys, err := KeysFromConfig(config.DefaultKeys())
	if err != nil {
		t.Fatalf("KeysFromConfig: %v", err)
	}
	return keys
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawNormalGrid(t *testing.T) {
	screen := newScreen(t, 60, 20)
	app := New(screen, Options{Size: card.Normal, Keys: defaultKeys(t)})
	app.Draw()

	// Normal cards step 15 columns and 10 rows: 4 per row, 2 rows.
	if mainc, _, _, _ := screen.GetContent(2, 1); mainc != 'A' {
		t.Fatalf("expected the Ace of Spades top-left, got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(17, 1); mainc != '2' {
		t.Fatalf("expected the Two of Spades next, got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(2, 11); mainc != '5' {
		t.Fatalf("expected the Five of Spades on the second row, got %q", mainc)
	}
	_, _, style, _ := screen.GetContent(14, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorDarkGray {
		t.Fatalf("expected the page colour between cards, got %v", bg)
	}
}

func TestKeysChangeSizeAndTheme(t *testing.T) {
	screen := newScreen(t, 60, 20)
	app := New(screen, Options{Size: card.Normal, Keys: defaultKeys(t)})

	if app.HandleEvent(key('s')) {
		t.Fatalf("size key must not quit")
	}
	if app.Size() != card.Small {
		t.Fatalf("expected small cards, got %s", app.Size())
	}
	app.HandleEvent(key('z'))
	if app.Size() != card.Normal {
		t.Fatalf("expected toggle back to normal, got %s", app.Size())
	}
	app.HandleEvent(key('z'))

	app.HandleEvent(key('t'))
	if got := app.Theme().Name; got != "classic" {
		t.Fatalf("expected classic theme, got %s", got)
	}
	app.Draw()

	if mainc, _, _, _ := screen.GetContent(1, 1); mainc != 'A' {
		t.Fatalf("expected small Ace label at (1,1), got %q", mainc)
	}
	_, _, style, _ := screen.GetContent(1, 1)
	if fg, bg, _ := style.Decompose(); fg != tcell.ColorBlack || bg != tcell.ColorWhite {
		t.Fatalf("expected black on white card, got %v on %v", fg, bg)
	}
	if mainc, _, _, _ := screen.GetContent(10, 1); mainc != '2' {
		t.Fatalf("expected small Two at (10,1), got %q", mainc)
	}
}

func TestQuitKeys(t *testing.T) {
	screen := newScreen(t, 20, 10)
	app := New(screen, Options{Keys: defaultKeys(t)})
	for _, ev := range []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if !app.HandleEvent(ev) {
			t.Fatalf("expected %v to quit", ev)
		}
	}
	if app.HandleEvent(key('?')) {
		t.Fatalf("unbound key must not quit")
	}
}

func TestLoopExitsOnQuit(t *testing.T) {
	screen := newScreen(t, 40, 12)
	app := New(screen, Options{Size: card.Normal, Keys: defaultKeys(t)})

	if err := screen.PostEvent(key('n')); err != nil {
		t.Fatalf("post: %v", err)
	}
	if err := screen.PostEvent(key('q')); err != nil {
		t.Fatalf("post: %v", err)
	}

	done := make(chan struct{})
	go func() {
		app.Loop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not exit on quit key")
	}
}

func TestKeysFromConfig(t *testing.T) {
	keys := defaultKeys(t)
	if keys.Quit != 'q' || keys.Small != 's' || keys.Normal != 'n' || keys.Toggle != 'z' || keys.Theme != 't' {
		t.Fatalf("unexpected keys %+v", keys)
	}

	bad := config.DefaultKeys()
	bad.Theme = "tab"
	if _, err := KeysFromConfig(bad); err == nil {
		t.Fatalf("expected error for multi-character binding")
	}
}
