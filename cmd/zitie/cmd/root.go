// Package cmd contains all CLI commands for the zitie tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/zitie/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zitie",
	Short: "Classical poem practice sheets (字帖)",
	Long: `zitie lays out classical Chinese poems on a 12-column grid of square
cells for printing as handwriting and reading practice sheets.

Each sheet holds:
  - The title, centered
  - The author as dynasty·name, right-aligned
  - One row per clause of the poem, centered
  - Optional pinyin above every character
  - An optional translation, left-aligned below the header 译文

Poems are kept in a local catalogue ('zitie import') or read from YAML/JSON
files, and printed as text, a terminal sheet or a PNG page.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/zitie)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().Bool("translation", true, "show the translation below the poem")
	rootCmd.PersistentFlags().Bool("py", false, "show pinyin above the characters")
	rootCmd.PersistentFlags().Bool("border", true, "draw cell borders")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("translation", rootCmd.PersistentFlags().Lookup("translation"))
	viper.BindPFlag("py", rootCmd.PersistentFlags().Lookup("py"))
	viper.BindPFlag("border", rootCmd.PersistentFlags().Lookup("border"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("ZITIE")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func verbose() bool {
	return viper.GetBool("verbose")
}
