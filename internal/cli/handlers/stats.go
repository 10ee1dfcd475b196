package handlers

import (
	"github.com/xolan/blogger/internal/cli"
)

// ShowStats prints the statistics report over the most recent logged workdays
func ShowStats(deps *cli.Deps) {
	result, err := deps.Services.Stats.Report()
	if err != nil {
		fail(deps, "build statistics", err)
		return
	}

	if n := len(result.Warnings); n > 0 {
		deps.Warn("Skipped %d malformed %s in logs file", n, cli.Pluralize("record", n))
	}
	deps.PrintLines(cli.RenderStatsReport(result.Report))
}
