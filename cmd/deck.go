package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/tuicards/internal/cellbuf"
	"github.com/arcanaland/tuicards/internal/deck"
	"github.com/arcanaland/tuicards/internal/layout"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Draw all 52 cards on a grid",
	Long: `Deck draws every card, suit by suit from Ace to King, on a grid as wide
as the terminal (or --columns cards wide).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		d := deck.New(s.size).WithStyle(s.theme.Card)
		w, h := s.size.Dimensions()

		columns, _ := cmd.Flags().GetInt("columns")
		if columns <= 0 {
			columns = fitColumns(w)
		}
		bufWidth, bufHeight := layout.Extent(len(d.Cards), columns, w, h)

		buf := cellbuf.NewBuffer(bufWidth, bufHeight)
		if s.theme.Page != tcell.ColorDefault {
			buf.Fill(' ', s.theme.PageStyle())
		}
		d.Render(buf.Area(), buf)

		out := cmd.OutOrStdout()
		title := fmt.Sprintf("%d cards · %s · %s", len(d.Cards), s.size, s.theme.Name)
		pad := max((bufWidth-runewidth.StringWidth(title))/2, 0)
		fmt.Fprintf(out, "%*s%s\n\n", pad, "", title)
		return cellbuf.WriteANSI(out, buf, buf.Area())
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	addDrawFlags(deckCmd)
	addColorFlag(deckCmd)
	deckCmd.Flags().IntP("columns", "c", 0, "Cards per row (default: fit the terminal width)")
}

// fitColumns returns how many cards of width fit across the terminal
func fitColumns(cardWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return max(width/(cardWidth+layout.Gap), 1)
}
