package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/devlog/internal/output"
	"github.com/balkashynov/devlog/internal/parser"
	"github.com/balkashynov/devlog/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate productivity reports",
	Long: `Summarize completed sessions over a period.

Examples:
  devlog report --today
  devlog report --week --by-tag
  devlog report --from 2026-08-01 --to 2026-08-15
  devlog report --date yesterday`,
	Run: withStore(func(cmd *cobra.Command, args []string) {
		if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
			runDayReport(dateStr)
			return
		}

		today, _ := cmd.Flags().GetBool("today")
		week, _ := cmd.Flags().GetBool("week")
		month, _ := cmd.Flags().GetBool("month")
		days, _ := cmd.Flags().GetInt("days")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		byTag, _ := cmd.Flags().GetBool("by-tag")

		switch {
		case today:
			days = 1
		case week:
			days = 7
		case month:
			days = 30
		}

		opts := report.Options{Days: days, ByTag: byTag}

		if fromStr != "" {
			from, err := parser.ParseDate(fromStr)
			if err != nil {
				ui.Error("%v", err)
				return
			}
			opts.StartDate = &from
		}
		if toStr != "" {
			to, err := parser.ParseDate(toStr)
			if err != nil {
				ui.Error("%v", err)
				return
			}
			opts.EndDate = &to
		}

		summary, err := reports.Summary(opts)
		if err != nil {
			ui.Error("%v", err)
			return
		}

		renderSummary(summary)
	}),
}

func renderSummary(s *report.Summary) {
	ui.Printf("%s\n", output.Bold("DevLog Report - "+s.Period))
	ui.Printf("%s\n\n", strings.Repeat("=", 60))

	ui.Printf("Total Sessions: %d\n", s.SessionCount)
	ui.Printf("Total Time: %s\n", formatMinutes(s.TotalMinutes))
	ui.Printf("Average Session: %s\n\n", formatMinutes(s.AvgMinutes))

	if len(s.ByTag) > 0 {
		ui.Printf("%s\n", output.Bold("Time by Tag:"))

		table := ui.Table([]string{"Tag", "Time", "Sessions", "Share"})
		for _, t := range s.ByTag {
			table.Append([]string{
				t.Tag,
				formatMinutes(t.Minutes),
				fmt.Sprintf("%d", t.Sessions),
				fmt.Sprintf("%.1f%%", t.Percent),
			})
		}
		table.Render()
		return
	}

	if len(s.Recent) > 0 {
		ui.Printf("%s\n", output.Bold("Recent Sessions:"))
		for _, e := range s.Recent {
			tags := ""
			if len(e.Tags) > 0 {
				tags = " [" + strings.Join(e.Tags, ", ") + "]"
			}
			ui.Printf("  %s - %6s - %s%s\n",
				e.StartTime.Format("Jan 02, 3:04 PM"),
				formatMinutes(e.Minutes),
				e.Description,
				output.Dim(tags))
		}
	}
}

func runDayReport(dateStr string) {
	date, err := parser.ParseDate(dateStr)
	if err != nil {
		ui.Error("%v", err)
		return
	}

	day, err := reports.ForDay(date)
	if err != nil {
		ui.Error("%v", err)
		return
	}

	ui.Printf("%s\n", output.Bold("Daily Report - "+day.Date.Format("Monday, January 02, 2006")))
	ui.Printf("%s\n\n", strings.Repeat("=", 60))

	ui.Printf("Sessions: %d\n", day.SessionCount)
	ui.Printf("Total Time: %s\n\n", formatMinutes(day.TotalMinutes))

	if len(day.Sessions) == 0 {
		ui.Muted("No completed sessions for this day.")
		return
	}

	for _, e := range day.Sessions {
		timeRange := e.StartTime.Format("3:04 PM")
		if e.EndTime != nil {
			timeRange += " - " + e.EndTime.Format("3:04 PM")
		}

		ui.Printf("%s\n", output.Cyan(timeRange))
		ui.Printf("  Duration: %s\n", formatMinutes(e.Minutes))
		ui.Printf("  Task: %s\n", e.Description)
		if len(e.Tags) > 0 {
			ui.Muted("  Tags: %s", strings.Join(e.Tags, ", "))
		}
		if e.Notes != "" {
			ui.Muted("  Notes: %s", e.Notes)
		}
		ui.Printf("\n")
	}
}

func init() {
	reportCmd.Flags().Bool("today", false, "Report for today")
	reportCmd.Flags().Bool("week", false, "Report for last 7 days")
	reportCmd.Flags().Bool("month", false, "Report for last 30 days")
	reportCmd.Flags().IntP("days", "d", 0, "Report for last N days")
	reportCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	reportCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	reportCmd.Flags().String("date", "", "Detailed report for a single day (YYYY-MM-DD, today, yesterday)")
	reportCmd.Flags().Bool("by-tag", false, "Group by tags")
}
