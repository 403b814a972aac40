package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bike-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default level tuning",
	Long: `Prints the built-in level tuning as YAML. Save it to
~/.arcade/configs/bikerush.yaml or ./configs/bikerush.yaml and edit it to
change the level; keys you leave out keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
