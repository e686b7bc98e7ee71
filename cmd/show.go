package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/cellbuf"
	"github.com/arcanaland/tuicards/internal/deck"
	"github.com/arcanaland/tuicards/internal/theme"
	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id...]",
	Short: "Draw one or more cards with details",
	Long: `Show draws each card followed by a short description.
Card IDs are a rank (A, 2-9, T or 10, J, Q, K) followed by a suit letter
(S, H, D, C), for example AS, 10h or qd.

Examples:
  tuicards show AS
  tuicards show --size small 10H QD
  tuicards show --fg white --bg navy KC`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		style, err := styleFlags(cmd, s.theme.Card)
		if err != nil {
			return err
		}

		d := deck.New(s.size).WithStyle(style)
		for _, id := range args {
			c, err := d.GetCard(id)
			if err != nil {
				return fmt.Errorf("error getting card: %v", err)
			}
			if err := displayCard(cmd.OutOrStdout(), c); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addDrawFlags(showCmd)
	addColorFlag(showCmd)
	showCmd.Flags().String("fg", "", "Foreground colour override (name or #rrggbb)")
	showCmd.Flags().String("bg", "", "Background colour override (name or #rrggbb)")
}

// styleFlags applies --fg and --bg on top of base
func styleFlags(cmd *cobra.Command, base card.Style) (card.Style, error) {
	style := base
	if fg, _ := cmd.Flags().GetString("fg"); fg != "" {
		c, err := theme.ParseColor(fg)
		if err != nil {
			return style, fmt.Errorf("invalid --fg: %v", err)
		}
		style = style.Foreground(c)
	}
	if bg, _ := cmd.Flags().GetString("bg"); bg != "" {
		c, err := theme.ParseColor(bg)
		if err != nil {
			return style, fmt.Errorf("invalid --bg: %v", err)
		}
		style = style.Background(c)
	}
	return style, nil
}

// infoLabel pads a label to a fixed column
func infoLabel(label string) string {
	return colorize.CyanString(runewidth.FillRight(label, 8))
}

// displayCard draws the card on the left and its details on the right
func displayCard(w io.Writer, c card.Card) error {
	width, height := c.Dimensions()
	buf := cellbuf.NewBuffer(width, height)
	c.Render(buf.Area(), buf)

	var art strings.Builder
	if err := cellbuf.WriteANSI(&art, buf, buf.Area()); err != nil {
		return err
	}
	artLines := strings.Split(strings.TrimSuffix(art.String(), "\n"), "\n")

	infoLines := []string{
		infoLabel("Card:") + colorize.HiWhiteString("%s of %s", c.Rank, c.Suit),
		infoLabel("ID:") + colorize.HiWhiteString("%s", deck.ID(c)),
		infoLabel("Text:") + c.String(),
		infoLabel("Suit:") + colorize.HiWhiteString("%s · %s", c.Suit, c.Suit.ColoredSymbol()),
		infoLabel("Size:") + colorize.HiWhiteString("%s (%dx%d)", c.Size, width, height),
	}

	// Print each line with the details starting past the card
	spacing := 4
	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
		} else {
			fmt.Fprint(w, strings.Repeat(" ", width))
		}
		if i < len(infoLines) {
			fmt.Fprint(w, strings.Repeat(" ", spacing), infoLines[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	return nil
}
