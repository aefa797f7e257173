package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/devlog/internal/session"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List past work sessions",
	Long:    "List past work sessions with optional filters for date range and tag",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		today, _ := cmd.Flags().GetBool("today")
		days, _ := cmd.Flags().GetInt("days")
		tag, _ := cmd.Flags().GetString("tag")
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if limit <= 0 {
			limit = viper.GetInt("list.limit")
		}

		sessions, err := manager.List(session.ListOptions{
			Days:  days,
			Today: today,
			Tag:   tag,
			Limit: limit,
		})
		if err != nil {
			ui.Error("%v", err)
			return
		}

		if jsonOutput {
			renderListJSON(sessions)
			return
		}

		if len(sessions) == 0 {
			ui.Muted("No sessions found")
			return
		}

		table := ui.Table([]string{"ID", "Date", "Time", "Duration", "Description", "Tags"})
		for _, s := range sessions {
			duration := "In progress"
			if s.Duration != nil {
				duration = formatMinutes(*s.Duration)
			}

			table.Append([]string{
				fmt.Sprintf("%d", s.ID),
				s.StartTime.Format("Jan 02"),
				s.StartTime.Format("3:04 PM"),
				duration,
				truncate(s.Description, 50),
				strings.Join(s.Tags, ", "),
			})
		}
		table.Render()

		if len(sessions) >= limit {
			ui.Muted("\nShowing %d most recent sessions. Use --limit to see more.", limit)
		}
	}),
}

// renderListJSON outputs sessions as JSON for scripting
func renderListJSON(sessions []session.Session) {
	out, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		ui.Error("marshaling JSON: %v", err)
		return
	}
	ui.Printf("%s\n", out)
}

func init() {
	listCmd.Flags().Bool("today", false, "Show only today's sessions")
	listCmd.Flags().IntP("days", "d", 0, "Show sessions from last N days")
	listCmd.Flags().StringP("tag", "t", "", "Filter by tag")
	listCmd.Flags().IntP("limit", "l", 0, "Maximum number of sessions to show")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
