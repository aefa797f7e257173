package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/devlog/internal/parser"
	"github.com/balkashynov/devlog/internal/session"
	"github.com/balkashynov/devlog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [description]",
	Short: "Start a new work session",
	Long: `Start a new work session. Tags can be passed with --tags or inline
using natural syntax.

Examples:
  devlog start "Implement login flow" -t backend -t auth
  devlog start "Fix flaky test #backend #ci"
  devlog start "Write docs" --watch`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		description, inlineTags := parser.ExtractTags(args[0])

		flagTags, _ := cmd.Flags().GetStringArray("tags")
		tags := append(inlineTags, flagTags...)

		sess, err := manager.Start(description, tags)
		if err != nil {
			ui.Error("%v", err)
			if errors.Is(err, session.ErrAlreadyActive) {
				ui.Muted("Stop it first with: devlog stop")
			}
			return
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			if err := tui.RunTimer(manager, sess); err != nil {
				ui.Error("%v", err)
			}
			return
		}

		ui.Success("Session started at %s", sess.StartTime.Format("3:04 PM"))
		ui.Printf("  Task: %s\n", sess.Description)
		if len(sess.Tags) > 0 {
			ui.Muted("  Tags: %s", strings.Join(sess.Tags, ", "))
		}
		ui.Muted("\nStop this session with: devlog stop")
	}),
}

func init() {
	startCmd.Flags().StringArrayP("tags", "t", nil, "Tags for this session (can specify multiple times)")
	startCmd.Flags().Bool("watch", false, "Keep an interactive timer open")
}
