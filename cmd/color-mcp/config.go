package main

import (
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.SetOut(os.Stdout)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "List configuration keys, current values and environment overrides",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range config.Default {
			cmd.Printf("%-14s = %-6v %s\n", f.Key, viper.Get(f.Key), f.Env())
			cmd.Printf("  %s\n", f.Description)
		}
	},
}
