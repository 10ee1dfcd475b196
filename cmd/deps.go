package cmd

import (
	"io"
	"os"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
	// Prompter opens the line reader of the interactive shell
	Prompter func() Prompter
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: service.NewServices,
		Prompter: newLinerPrompter,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// handlerDeps builds the handler dependencies from the global deps.
// It reports a failure to load the configuration and returns nil.
func handlerDeps() *cli.Deps {
	services, err := deps.Services()
	if err != nil {
		failServices(err)
		return nil
	}
	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: services,
	}
}
