package main

import (
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/samber/lo"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	lo.Must0(config.Setup())
	Execute()
}
