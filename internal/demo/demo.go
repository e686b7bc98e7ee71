// Package demo runs an interactive full-screen view of the whole deck.
package demo

import (
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/cellbuf"
	"github.com/arcanaland/tuicards/internal/config"
	"github.com/arcanaland/tuicards/internal/deck"
	"github.com/arcanaland/tuicards/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Keys holds the key bindings of the demo
type Keys struct {
	Quit   rune
	Small  rune
	Normal rune
	Toggle rune
	Theme  rune
}

// KeysFromConfig converts configured bindings, each a single character
func KeysFromConfig(k config.Keys) (Keys, error) {
	var keys Keys
	bindings := []struct {
		name string
		in   string
		out  *rune
	}{
		{"quit", k.Quit, &keys.Quit},
		{"small", k.Small, &keys.Small},
		{"normal", k.Normal, &keys.Normal},
		{"toggle", k.Toggle, &keys.Toggle},
		{"theme", k.Theme, &keys.Theme},
	}
	for _, b := range bindings {
		if utf8.RuneCountInString(b.in) != 1 {
			return Keys{}, fmt.Errorf("key binding %s must be a single character, got %q", b.name, b.in)
		}
		*b.out, _ = utf8.DecodeRuneInString(b.in)
	}
	return keys, nil
}

// Options configures an App
type Options struct {
	Size   card.Size
	Themes []theme.Theme
	Theme  string
	Keys   Keys
	Logger *log.Logger
}

// App draws the 52 cards on a grid and reacts to key presses
type App struct {
	screen tcell.Screen
	size   card.Size
	themes *theme.Cycle
	keys   Keys
	log    *log.Logger
	deck   *deck.Deck
}

// New creates an App drawing on screen
func New(screen tcell.Screen, opts Options) *App {
	themes := opts.Themes
	if len(themes) == 0 {
		themes = theme.Builtins()
	}
	keys := opts.Keys
	if keys == (Keys{}) {
		keys, _ = KeysFromConfig(config.DefaultKeys())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a := &App{
		screen: screen,
		size:   opts.Size,
		themes: theme.NewCycle(themes, opts.Theme),
		keys:   keys,
		log:    logger,
	}
	a.rebuild()
	return a
}

// Size returns the current card size
func (a *App) Size() card.Size {
	return a.size
}

// Theme returns the current theme
func (a *App) Theme() theme.Theme {
	return a.themes.Current()
}

func (a *App) rebuild() {
	a.deck = deck.New(a.size).WithStyle(a.themes.Current().Card)
}

// Draw clears the screen to the page colour and lays out the deck
func (a *App) Draw() {
	page := a.themes.Current().PageStyle()
	a.screen.SetStyle(page)
	a.screen.Fill(' ', page)

	w, h := a.screen.Size()
	n := a.deck.Render(cellbuf.NewRect(0, 0, w, h), a.screen)
	a.log.Printf("drew %d/%d %s cards on %dx%d", n, len(a.deck.Cards), a.size, w, h)
}

// HandleEvent applies one event and reports whether the demo should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		a.log.Printf("resized to %dx%d", w, h)
		a.screen.Sync()
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case a.keys.Quit:
		return true
	case a.keys.Small:
		a.setSize(card.Small)
	case a.keys.Normal:
		a.setSize(card.Normal)
	case a.keys.Toggle:
		a.setSize(a.size.Toggle())
	case a.keys.Theme:
		t := a.themes.Next()
		a.log.Printf("theme %s", t.Name)
		a.rebuild()
	}
	return false
}

func (a *App) setSize(size card.Size) {
	if size == a.size {
		return
	}
	a.log.Printf("size %s -> %s", a.size, size)
	a.size = size
	a.deck = a.deck.WithSize(size)
}

// Loop draws, shows and waits for input until a quit key is pressed or
// the screen is finalised
func (a *App) Loop() {
	for {
		a.Draw()
		a.screen.Show()

		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.HandleEvent(ev) {
			return
		}
	}
}

// Run takes over the terminal, runs the demo and restores the terminal
// before returning
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %v", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	New(screen, opts).Loop()
	return nil
}
