package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// Modal hosts one Component on top of the page. Opening publishes
// modal:open and closing publishes modal:close, so the page can lock.
type Modal struct {
	events  Emitter
	content Component
	open    bool
}

// NewModal creates a closed modal.
func NewModal(events Emitter) *Modal {
	return &Modal{events: events}
}

// Render replaces the content and opens the modal if it is closed.
func (m *Modal) Render(content Component) string {
	m.content = content
	m.Open()
	return m.View()
}

// Open shows the modal. Opening an open modal publishes nothing.
func (m *Modal) Open() {
	if m.open || m.content == nil {
		return
	}
	m.open = true
	m.events.Publish(event.NewSignal(event.ModalOpen))
}

// Close hides the modal and drops its content.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.content = nil
	m.events.Publish(event.NewSignal(event.ModalClose))
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Content returns the hosted component, or nil when closed.
func (m *Modal) Content() Component {
	return m.content
}

// Mode returns the key mode of the hosted component.
func (m *Modal) Mode() keymap.Mode {
	if m.content == nil {
		return ""
	}
	return m.content.Mode()
}

// HandleKey closes the modal on the close binding and passes every other
// key to the content.
func (m *Modal) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.open {
		return nil
	}
	if cmd, ok := keys.GetBinding(msg, m.content.Mode()); ok {
		switch cmd {
		case keymap.CmdClose:
			m.Close()
			return nil
		case keymap.CmdQuit:
			return tea.Quit
		}
	}
	return m.content.HandleKey(msg)
}

// View renders the framed content with its help bar.
func (m *Modal) View() string {
	if !m.open {
		return ""
	}
	return styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.content.View(),
		HelpBar(m.content.Mode()),
	))
}
