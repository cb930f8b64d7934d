package main

import (
	"os"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(Version)
			return
		}

		cmd.Printf("color-tools-mcp %s\n", Version)
		cmd.Printf("  Build time: %s\n", BuildTime)
		cmd.Printf("  Git commit: %s\n", GitCommit)
		cmd.Printf("  Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
