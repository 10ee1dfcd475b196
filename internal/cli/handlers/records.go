package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/record"
	"github.com/xolan/blogger/internal/service"
)

// AddScript records a migration script
func AddScript(deps *cli.Deps, ticket, script string) {
	s, err := deps.Services.Records.AddScript(ticket, script)
	if err != nil {
		if errors.Is(err, service.ErrEmptyScript) {
			deps.Fail("Script cannot be empty", nil, "Example: blogger script add QI-12 V42__add_index.sql")
			return
		}
		fail(deps, "save script", err)
		return
	}

	deps.Printf("Added script: %s [%s]\n", s.Script, cli.ShortID(s.ID))
}

// ListScripts prints every migration script with its flags
func ListScripts(deps *cli.Deps, openOnly bool) {
	scripts, err := deps.Services.Records.Scripts()
	if err != nil {
		fail(deps, "read scripts", err)
		return
	}

	shown := 0
	for _, s := range scripts {
		if openOnly && s.IsDone() {
			continue
		}
		shown++
		deps.Println(FormatScript(s))
	}
	if shown == 0 {
		deps.Println("No scripts found")
	}
}

// FormatScript formats a migration script as one listing line
func FormatScript(s record.MigrationScript) string {
	return fmt.Sprintf("[%s] %s  %-12s %s  %s %s %s",
		cli.ShortID(s.ID), s.Timestamp.Format("02.01.2006"), s.Ticket, s.Script,
		cli.FormatFlag("review", s.Reviewed),
		cli.FormatFlag("test", s.AppliedTest),
		cli.FormatFlag("prod", s.AppliedProd))
}

// ToggleScript flips a flag of a migration script
func ToggleScript(deps *cli.Deps, id, flag string) {
	s, state, err := deps.Services.Records.ToggleScript(id, flag)
	if err != nil {
		if errors.Is(err, record.ErrUnknownFlag) {
			deps.Fail(fmt.Sprintf("Unknown flag '%s'", flag), nil, "Valid flags: reviewed, applied_test, applied_prod")
			return
		}
		fail(deps, "update script", err)
		return
	}

	deps.Printf("%s: %s\n", s.Script, cli.FormatFlag(flag, state))
}

// DeleteScript removes a migration script
func DeleteScript(deps *cli.Deps, id string) {
	s, err := deps.Services.Records.DeleteScript(id)
	if err != nil {
		fail(deps, "delete script", err)
		return
	}

	deps.Printf("Deleted script: %s\n", s.Script)
}

// AddLink stores a link bookmark
func AddLink(deps *cli.Deps, url, comment string) {
	l, err := deps.Services.Records.AddLink(url, comment)
	if err != nil {
		if errors.Is(err, service.ErrEmptyURL) {
			deps.Fail("URL cannot be empty", nil)
			return
		}
		fail(deps, "save link", err)
		return
	}

	deps.Printf("Added link: %s [%s]\n", l.URL, cli.ShortID(l.ID))
}

// ListLinks prints every link bookmark
func ListLinks(deps *cli.Deps) {
	links, err := deps.Services.Records.Links()
	if err != nil {
		fail(deps, "read links", err)
		return
	}

	if len(links) == 0 {
		deps.Println("No links found")
		return
	}
	for _, l := range links {
		line := fmt.Sprintf("[%s] %s  %s", cli.ShortID(l.ID), l.Timestamp.Format("02.01.2006"), l.URL)
		if l.Comment != "" {
			line += "  " + l.Comment
		}
		deps.Println(line)
	}
}

// DeleteLink removes a link bookmark
func DeleteLink(deps *cli.Deps, id string) {
	l, err := deps.Services.Records.DeleteLink(id)
	if err != nil {
		fail(deps, "delete link", err)
		return
	}

	deps.Printf("Deleted link: %s\n", l.URL)
}
