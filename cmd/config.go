package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/tuicards/internal/card"
	"github.com/arcanaland/tuicards/internal/config"
	"github.com/arcanaland/tuicards/internal/theme"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tuicards configuration",
	Long:  `Commands for creating and changing the tuicards config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetSizeCmd represents the config set-size command
var configSetSizeCmd = &cobra.Command{
	Use:   "set-size [small|normal]",
	Short: "Set the default card size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := card.ParseSize(args[0])
		if err != nil {
			return err
		}
		if err := config.SetDefaultSize(size.String()); err != nil {
			return fmt.Errorf("error setting default size: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default size set to: %s\n", size)
		return nil
	},
}

// configSetThemeCmd represents the config set-theme command
var configSetThemeCmd = &cobra.Command{
	Use:   "set-theme [theme_name]",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		// Check the theme exists before saving it
		themes, err := theme.All(customThemes(cfg))
		if err != nil {
			return fmt.Errorf("error loading themes: %v", err)
		}
		t, err := theme.Lookup(themes, args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultTheme(t.Name); err != nil {
			return fmt.Errorf("error setting default theme: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default theme set to: %s\n", t.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSizeCmd)
	configCmd.AddCommand(configSetThemeCmd)
}
