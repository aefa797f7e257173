package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/devlog/internal/session"
)

// RunTimer starts the interactive timer TUI for an active session
func RunTimer(manager *session.Manager, sess *session.Session) error {
	model := NewTimerModel(manager, sess)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Report what happened after the TUI closes
	if m, ok := finalModel.(TimerModel); ok {
		switch {
		case m.err != nil:
			return m.err
		case m.stopped != nil && m.stopped.Duration != nil:
			fmt.Printf("✓ Session stopped after %dm: %s\n", *m.stopped.Duration, m.stopped.Description)
		case m.detached:
			fmt.Println("Session still running. Stop it with: devlog stop")
		}
	}

	return nil
}
