package commands

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current work session",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		notes, _ := cmd.Flags().GetString("notes")

		sess, err := manager.Stop(notes)
		if err != nil {
			ui.Error("%v", err)
			return
		}

		ui.Success("Session stopped")
		ui.Printf("  Task: %s\n", sess.Description)
		if sess.Duration != nil {
			ui.Printf("  Duration: %s\n", formatMinutes(*sess.Duration))
		}
		if sess.Notes != "" {
			ui.Muted("  Notes: %s", sess.Notes)
		}
	}),
}

func init() {
	stopCmd.Flags().StringP("notes", "n", "", "Notes about what you accomplished")
}
