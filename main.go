package main

import (
	"fmt"
	"os"

	"github.com/xolan/blogger/cmd"
	"github.com/xolan/blogger/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:]))
}

// run validates the config file before any command touches it and returns the exit code
func run(args []string) int {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Failed to locate config directory\nDetails: %v\n", err)
		return 1
	}
	if _, err := config.LoadOrDefault(configPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Invalid config file %s\nDetails: %v\n", configPath, err)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
