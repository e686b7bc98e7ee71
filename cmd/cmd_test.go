package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All card templates are valid") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "--no-color", "--size", "small", "AS")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	for _, want := range []string{"│A♠  ♠ │", "Ace of Spades", "ID:     AS", "small (8x5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestShowUnknownCard(t *testing.T) {
	if _, err := run(t, "show", "--no-color", "ZZ"); err == nil {
		t.Fatalf("expected error for unknown card")
	}
}

func TestDeckCommand(t *testing.T) {
	out, err := run(t, "deck", "--no-color", "--size", "small", "--theme", "transparent", "--columns", "13")
	if err != nil {
		t.Fatalf("deck: %v\n%s", err, out)
	}
	if !strings.Contains(out, "52 cards · small · transparent") {
		t.Fatalf("missing title:\n%s", out)
	}
	for _, want := range []string{"│A♠  ♠ │", "│K♣    │", "│10  ♥ │"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestConfigSetSize(t *testing.T) {
	out, err := run(t, "config", "set-size", "small")
	if err != nil {
		t.Fatalf("set-size: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Default size set to: small") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := run(t, "config", "set-theme", "neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
