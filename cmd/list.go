package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
	"github.com/xolan/blogger/internal/filter"
	"github.com/xolan/blogger/internal/timeutil"
)

// listCmd represents the log list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries grouped by day",
	Long: `List work log entries grouped by day, oldest first.

Filtering:
  --date          Only entries of one day (DD.MM.YYYY)
  --from / --to   Inclusive date range; --to defaults to today
  --search        Case-insensitive keyword in ticket, description or subtasks
  --prefix        Ticket prefix (e.g., QI-)
  --incomplete    Only entries not yet complete for a status type

Examples:
  blogger log list
  blogger log list --date 15.01.2025
  blogger log list --from 01.01.2025 --search login
  blogger log list --prefix QI- --incomplete q`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(cmd)
	},
}

func init() {
	logCmd.AddCommand(listCmd)

	listCmd.Flags().String("date", "", "Only entries of this date (DD.MM.YYYY)")
	listCmd.Flags().String("from", "", "Start date for filtering (DD.MM.YYYY)")
	listCmd.Flags().String("to", "", "End date for filtering (DD.MM.YYYY)")
	listCmd.Flags().StringP("search", "k", "", "Keyword to search for")
	listCmd.Flags().StringP("prefix", "p", "", "Ticket prefix")
	listCmd.Flags().StringP("incomplete", "i", "", "Only entries incomplete for this status type")
}

// listEntries builds the filter from the flags and lists the matching entries
func listEntries(cmd *cobra.Command) {
	dateStr, _ := cmd.Flags().GetString("date")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	keyword, _ := cmd.Flags().GetString("search")
	prefix, _ := cmd.Flags().GetString("prefix")
	incomplete, _ := cmd.Flags().GetString("incomplete")

	if dateStr != "" && (fromStr != "" || toStr != "") {
		failUsage("Cannot use --date with --from or --to",
			"blogger log list --date 15.01.2025",
			"blogger log list --from 01.01.2025 --to 15.01.2025")
		return
	}

	f := filter.NewFilter(keyword, prefix, incomplete)
	if dateStr != "" {
		day, ok := parseDateFlag("date", dateStr)
		if !ok {
			return
		}
		f.OnDate(day)
	}

	d := handlerDeps()
	if d == nil {
		return
	}

	if fromStr != "" || toStr != "" {
		start, end, err := timeutil.ParseDateRangeFlags(fromStr, toStr, d.Services.Now())
		if err != nil {
			failUsage(err.Error(), "blogger log list --from 01.01.2025 --to 15.01.2025")
			return
		}
		f.Between(start, end)
	}

	if incomplete != "" {
		st, err := d.Services.Config.Get().StatusType(incomplete)
		if err != nil {
			d.Fail("Unknown status type", err)
			return
		}
		f.Incomplete = st.Name
	}

	handlers.ListEntries(d, f)
}
