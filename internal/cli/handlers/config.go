package handlers

import (
	"errors"
	"path/filepath"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/service"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	deps.Println("Configuration:")
	deps.Println(cli.Rule("="))
	deps.Printf("Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		deps.Println("Status: File exists")
	} else {
		deps.Println("Status: Using defaults (no config file)")
	}
	deps.Println(cli.Rule("-"))
	deps.Printf("data_dir:       %s\n", filepath.Dir(deps.Services.Paths().Logs))
	deps.Printf("theme:          %s\n", cfg.Theme)
	deps.Printf("sprint.epoch:   %s\n", cfg.Sprint.Epoch)
	deps.Printf("sprint.weeks:   %d\n", cfg.Sprint.DurationWeeks)
	deps.Println("status_types:")
	for _, st := range cfg.StatusTypes {
		line := "  - " + st.Name
		if st.Prefix != "" {
			line += " (prefix " + st.Prefix + ")"
		}
		if st.Default {
			line += " [default]"
		}
		deps.Println(line)
	}
}

// ShowConfigPath prints the config file location
func ShowConfigPath(deps *cli.Deps) {
	deps.Println(deps.Services.Config.GetPath())
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		if errors.Is(err, service.ErrConfigExists) {
			deps.Fail("Config file already exists", err, "Edit it directly or remove it first")
			return
		}
		deps.Fail("Failed to create config file", err)
		return
	}

	deps.Printf("Created config file: %s\n", deps.Services.Config.GetPath())
	deps.Println("Edit this file to customize your settings.")
}

// AddStatusType registers a status type in the config file
func AddStatusType(deps *cli.Deps, st entry.StatusType) {
	if err := deps.Services.Config.AddStatusType(st); err != nil {
		deps.Fail("Failed to add status type", err)
		return
	}
	deps.Printf("Added status type: %s\n", st.Name)
}

// RemoveStatusType unregisters a status type from the config file
func RemoveStatusType(deps *cli.Deps, name string) {
	if err := deps.Services.Config.RemoveStatusType(name); err != nil {
		fail(deps, "remove status type", err)
		return
	}
	deps.Printf("Removed status type: %s\n", name)
	deps.Println("Existing entries keep their recorded values.")
}

// SetTheme stores the dashboard theme
func SetTheme(deps *cli.Deps, theme string) {
	if err := deps.Services.Config.SetTheme(theme); err != nil {
		deps.Fail("Failed to set theme", err)
		return
	}
	deps.Printf("Theme set to %s\n", deps.Services.Config.Get().Theme)
}
