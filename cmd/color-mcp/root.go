package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/logging"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	lo.Must0(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON instead of text")
	lo.Must0(viper.BindPFlag(config.KeyLogJSON, rootCmd.PersistentFlags().Lookup("log-json")))

	rootCmd.Flags().Int("swatch-cell", 64, "Default swatch cell width in pixels")
	lo.Must0(viper.BindPFlag(config.KeySwatchCell, rootCmd.Flags().Lookup("swatch-cell")))
}

var rootCmd = &cobra.Command{
	Use:   "color-mcp",
	Short: "MCP server for color conversion and scheme generation",
	Long: `color-mcp serves color tools over the Model Context Protocol.

It converts between hex, RGB, HSV, HSL and CMYK, builds complementary,
triadic, tetradic and analogous schemes, and renders swatches.

The server communicates via MCP over stdin/stdout. Configure it in your
MCP client rather than running it by hand.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logging.Setup(cfg)

		logrus.WithFields(logrus.Fields{
			"version": Version,
			"built":   BuildTime,
			"commit":  GitCommit,
		}).Debug("starting color MCP server")

		return server.New(cfg, Version).Run()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if viper.GetBool(config.KeyCliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("server error")
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
