package handlers

import (
	"fmt"

	"github.com/xolan/blogger/internal/cli"
)

// ShowCurrentSprint prints the sprint containing today
func ShowCurrentSprint(deps *cli.Deps) {
	result, err := deps.Services.Sprint.Current()
	if err != nil {
		fail(deps, "compute sprint", err)
		return
	}

	deps.PrintLines(cli.RenderSprint(result.Bucket, result.Statistics, deps.Services.Log.StatusTypes()))
}

// ShowSprintHistory prints every sprint from the first to the last log
func ShowSprintHistory(deps *cli.Deps) {
	result, err := deps.Services.Sprint.History()
	if err != nil {
		fail(deps, "compute sprint history", err)
		return
	}

	deps.Println(fmt.Sprintf("Sprints of %d %s starting %s:", result.Config.DurationWeeks,
		cli.Pluralize("week", result.Config.DurationWeeks), result.Config.Epoch.Format("02.01.2006")))
	deps.PrintLines(cli.RenderSprintHistory(result.Buckets, result.Current))
}
