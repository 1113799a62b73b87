package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// SuccessProps is what a Success view renders.
type SuccessProps struct {
	OrderID string
	Total   decimal.Decimal
}

// Success confirms a placed order with the amount charged.
type Success struct {
	events Emitter
	props  SuccessProps
}

// NewSuccess creates the confirmation view.
func NewSuccess(events Emitter) *Success {
	return &Success{events: events}
}

// Render stores props and renders the confirmation.
func (s *Success) Render(props SuccessProps) string {
	s.props = props
	return s.View()
}

// View renders the confirmation from its last props.
func (s *Success) View() string {
	lines := []string{
		styles.SuccessMsg.Render("✓ Order placed"),
		"",
		styles.Text.Render("Charged " + FormatAmount(s.props.Total)),
	}
	if s.props.OrderID != "" {
		lines = append(lines, styles.Muted.Render("Order "+s.props.OrderID))
	}
	lines = append(lines, "", button("New purchases!", true, true))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Mode implements Component.
func (s *Success) Mode() keymap.Mode {
	return keymap.ModeSuccess
}

// HandleKey publishes success:close on submit.
func (s *Success) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := keys.GetBinding(msg, keymap.ModeSuccess); ok && cmd == keymap.CmdSubmit {
		s.events.Publish(event.NewSignal(event.SuccessClose))
	}
	return nil
}
