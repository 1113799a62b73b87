package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// Payment toggle labels.
const (
	LabelCard = "Card"
	LabelCash = "Cash"
)

// OrderProps is what an OrderForm renders.
type OrderProps struct {
	Address string
	Payment model.PaymentMethod
	Valid   bool
	Errors  string
}

// OrderForm is the delivery step: two exclusive payment toggles and the
// address input. The toggles go from none to card or cash and then between
// the two; only Render resets them.
type OrderForm struct {
	form
	payment model.PaymentMethod
}

// NewOrderForm creates the delivery form.
func NewOrderForm(events Emitter) *OrderForm {
	return &OrderForm{
		form: newForm(events, event.FormOrder, event.OrderSubmit, "Payment and delivery", "Next", 1, []fieldSpec{
			{field: model.FieldAddress, label: "Delivery address", placeholder: "Enter an address"},
		}),
	}
}

// Render repaints the form from props and moves focus to the payment toggles.
func (f *OrderForm) Render(props OrderProps) string {
	f.setValue(model.FieldAddress, props.Address)
	f.payment = props.Payment
	f.valid = props.Valid
	f.errors = props.Errors
	f.setFocus(0)
	return f.View()
}

// Payment returns the highlighted payment method.
func (f *OrderForm) Payment() model.PaymentMethod {
	return f.payment
}

// HandleKey implements Component.
func (f *OrderForm) HandleKey(msg tea.KeyMsg) tea.Cmd {
	return f.handleKey(msg, func(cmd keymap.Command) {
		switch cmd {
		case keymap.CmdPayCard:
			f.choosePayment(model.PaymentCard)
		case keymap.CmdPayCash:
			f.choosePayment(model.PaymentCash)
		}
	})
}

func (f *OrderForm) choosePayment(method model.PaymentMethod) {
	f.payment = method
	f.events.Publish(event.NewPaymentChosenEvent(method))
}

// View renders the form.
func (f *OrderForm) View() string {
	label := styles.InputLabel.Render("Payment method")
	if f.focus < f.lead {
		label = styles.InputFocused.Render("Payment method") + styles.Muted.Render("  ←/→")
	}

	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		button(LabelCard, true, f.payment == model.PaymentCard),
		" ",
		button(LabelCash, true, f.payment == model.PaymentCash),
	)

	lines := []string{styles.Title.Render(f.title), label, toggles, ""}
	lines = append(lines, f.renderInputs()...)
	lines = append(lines, f.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
