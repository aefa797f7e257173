package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/devlog/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search sessions by description or notes",
	Long:  "Case-insensitive substring search across session descriptions and notes",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		term := args[0]
		limit, _ := cmd.Flags().GetInt("limit")

		sessions, err := manager.Search(term, limit)
		if err != nil {
			ui.Error("%v", err)
			return
		}

		if len(sessions) == 0 {
			ui.Muted("No sessions found matching '%s'", term)
			return
		}

		ui.Printf("%s\n\n", output.Bold(
			fmt.Sprintf("Found %d session(s) matching '%s':", len(sessions), term)))

		for _, s := range sessions {
			duration := "In progress"
			if s.Duration != nil {
				duration = formatMinutes(*s.Duration)
			}

			ui.Printf("%s\n", output.Cyan("• "+s.StartTime.Format("Jan 02, 3:04 PM")+" - "+duration))
			ui.Printf("  %s\n", s.Description)
			if len(s.Tags) > 0 {
				ui.Muted("  Tags: %s", strings.Join(s.Tags, ", "))
			}
			if s.Notes != "" {
				ui.Muted("  Notes: %s", s.Notes)
			}
			ui.Printf("\n")
		}
	}),
}

func init() {
	searchCmd.Flags().IntP("limit", "l", 20, "Maximum results")
}
