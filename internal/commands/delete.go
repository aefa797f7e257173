package commands

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a session by ID",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			ui.Error("invalid session ID '%s'", args[0])
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Are you sure you want to delete this session?") {
			ui.Muted("Aborted")
			return
		}

		deleted, err := manager.Delete(uint(id))
		if err != nil {
			ui.Error("%v", err)
			return
		}

		if deleted {
			ui.Success("Session %d deleted", id)
		} else {
			ui.Error("Session %d not found", id)
		}
	}),
}

func confirm(prompt string) bool {
	ui.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}
