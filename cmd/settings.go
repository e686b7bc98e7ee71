package cmd

import (
	"fmt"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/config"
	"github.com/arcanaland/tuicards/internal/theme"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// settings are the drawing options of a command after merging flags
// over the config file
type settings struct {
	config *config.Config
	size   card.Size
	theme  theme.Theme
	themes []theme.Theme
}

// addDrawFlags registers the flags shared by commands that draw cards
func addDrawFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("size", "s", "", "Card size: small or normal (default from config)")
	cmd.Flags().StringP("theme", "t", "", "Colour theme (default from config)")
}

// addColorFlag registers --no-color for commands that print to stdout
func addColorFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("no-color", false, "Disable ANSI colours")
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	sizeName := cfg.Size
	if flag, _ := cmd.Flags().GetString("size"); flag != "" {
		sizeName = flag
	}
	size, err := card.ParseSize(sizeName)
	if err != nil {
		return nil, err
	}

	themes, err := theme.All(customThemes(cfg))
	if err != nil {
		return nil, fmt.Errorf("error loading themes: %v", err)
	}
	themeName := cfg.Theme
	if flag, _ := cmd.Flags().GetString("theme"); flag != "" {
		themeName = flag
	}
	t, err := theme.Lookup(themes, themeName)
	if err != nil {
		return nil, err
	}

	if noColor, err := cmd.Flags().GetBool("no-color"); err == nil && noColor {
		colorize.NoColor = true
	}

	return &settings{config: cfg, size: size, theme: t, themes: themes}, nil
}

func customThemes(cfg *config.Config) map[string]theme.Definition {
	defs := make(map[string]theme.Definition, len(cfg.Themes))
	for name, tc := range cfg.Themes {
		defs[name] = theme.Definition{Page: tc.Page, CardFG: tc.CardFG, CardBG: tc.CardBG}
	}
	return defs
}
