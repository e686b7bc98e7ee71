package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tuicards",
	Short: "Draw playing cards in the terminal",
	Long: `tuicards draws the 52 cards of a standard deck as character-cell art.
Cards come in two sizes (small 8x5, normal 14x9) and use a four-colour deck:
spades black, hearts red, diamonds blue, clubs green.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
