package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/devlog/internal/session"
)

// TimerModel renders a live clock for the active session
type TimerModel struct {
	width  int
	height int

	manager *session.Manager
	sess    *session.Session

	// Timer state
	elapsed time.Duration

	// Notes prompt shown before stopping
	notesInput    textinput.Model
	enteringNotes bool

	// Exit state
	stopped  *session.Session // set when the session was stopped from the TUI
	detached bool             // true when the user left without stopping
	err      error
}

// timerTickMsg is sent every second to update the clock
type timerTickMsg struct{}

// NewTimerModel creates a timer model for the given active session
func NewTimerModel(manager *session.Manager, sess *session.Session) TimerModel {
	input := textinput.New()
	input.Placeholder = "What did you accomplish? (optional)"
	input.CharLimit = 200
	input.Width = 50
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	return TimerModel{
		manager:    manager,
		sess:       sess,
		elapsed:    time.Since(sess.StartTime),
		notesInput: input,
	}
}

// Init starts the clock ticker
func (m TimerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = time.Since(m.sess.StartTime)
		if m.stopped == nil && !m.detached {
			return m, tick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.enteringNotes {
			switch msg.String() {
			case "enter":
				stopped, err := m.manager.Stop(strings.TrimSpace(m.notesInput.Value()))
				m.stopped = stopped
				m.err = err
				return m, tea.Quit
			case "esc":
				m.enteringNotes = false
				m.notesInput.Blur()
				return m, nil
			case "ctrl+c":
				m.detached = true
				return m, tea.Quit
			}

			var cmd tea.Cmd
			m.notesInput, cmd = m.notesInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "s", "S":
			m.enteringNotes = true
			return m, m.notesInput.Focus()
		case "ctrl+c", "esc", "q":
			// Leave the session running
			m.detached = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  TRACKING TIME  ⏱"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	desc := m.sess.Description
	if len(desc) > m.width-4 && m.width > 7 {
		desc = desc[:m.width-7] + "..."
	}
	components = append(components, descStyle.Render(desc))

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, clockStyle.Render(renderClock(m.elapsed)))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	info := fmt.Sprintf("Started at %s", m.sess.StartTime.Format("15:04:05"))
	if len(m.sess.Tags) > 0 {
		info += "  ·  " + strings.Join(m.sess.Tags, ", ")
	}
	components = append(components, infoStyle.Render(info))

	if m.enteringNotes {
		promptStyle := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, promptStyle.Render(m.notesInput.View()))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		m.renderHelpBar(),
	)
}

func renderClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func (m TimerModel) renderHelpBar() string {
	help := "s stop session  ·  q detach (keeps running)"
	if m.enteringNotes {
		help = "enter stop with notes  ·  esc back"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(help)
}
