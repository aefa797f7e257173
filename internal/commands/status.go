package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/devlog/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sess, err := manager.Current()
		if err != nil {
			ui.Error("%v", err)
			return
		}

		if sess == nil {
			ui.Muted("No active session")
			ui.Muted("\nStart a session with: devlog start \"Your task description\"")
			return
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			if err := tui.RunTimer(manager, sess); err != nil {
				ui.Error("%v", err)
			}
			return
		}

		ui.Printf("⏱  Active Session\n")
		ui.Printf("  Task: %s\n", sess.Description)
		ui.Printf("  Started: %s\n", timeAgo(sess.StartTime))
		ui.Printf("  Elapsed: %s\n", formatElapsed(time.Since(sess.StartTime)))
		if len(sess.Tags) > 0 {
			ui.Muted("  Tags: %s", strings.Join(sess.Tags, ", "))
		}
	}),
}

func init() {
	statusCmd.Flags().Bool("watch", false, "Keep an interactive timer open")
}
