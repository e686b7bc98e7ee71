package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arcanaland/tuicards/internal/demo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Browse the whole deck interactively",
	Long: `Demo fills the terminal with the deck. Keys (configurable in the config file):
  s / n   small / normal cards
  z       toggle card size
  t       next colour theme
  q, Esc  quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("demo needs an interactive terminal")
		}

		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		keys, err := demo.KeysFromConfig(s.config.Keys)
		if err != nil {
			return err
		}

		// The screen belongs to tcell, so logs go to a file or nowhere.
		var logOut io.Writer = io.Discard
		if path, _ := cmd.Flags().GetString("log"); path != "" {
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("error opening log file: %v", err)
			}
			defer file.Close()
			logOut = file
		}
		logger := log.New(logOut, "tuicards: ", log.LstdFlags)
		logger.Printf("demo starting: size=%s theme=%s", s.size, s.theme.Name)

		return demo.Run(demo.Options{
			Size:   s.size,
			Themes: s.themes,
			Theme:  s.theme.Name,
			Keys:   keys,
			Logger: logger,
		})
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)

	addDrawFlags(demoCmd)
	demoCmd.Flags().String("log", "", "Append debug logs to this file")
}
