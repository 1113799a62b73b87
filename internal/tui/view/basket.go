package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// LabelCheckout is the basket's checkout button.
const LabelCheckout = "Checkout"

// BasketProps is what a Basket renders.
type BasketProps struct {
	Items    []model.Product
	Total    decimal.Decimal
	Selected int
}

// Basket lists the basket rows with the running total. Checkout is enabled
// only while the basket holds at least one item.
type Basket struct {
	events Emitter
	row    *Card
	props  BasketProps
	cursor int
}

// NewBasket creates a basket view of the given outer width.
func NewBasket(events Emitter, width int) *Basket {
	return &Basket{
		events: events,
		row:    NewCard(CardBasket, width),
	}
}

// Render stores props and renders the basket.
func (b *Basket) Render(props BasketProps) string {
	props.Items = append([]model.Product(nil), props.Items...)
	b.props = props
	if b.cursor >= len(props.Items) {
		b.cursor = max(0, len(props.Items)-1)
	}
	return b.View()
}

// CheckoutEnabled reports whether the checkout button is enabled.
func (b *Basket) CheckoutEnabled() bool {
	return b.props.Selected > 0
}

// Cursor returns the index of the highlighted row.
func (b *Basket) Cursor() int {
	return b.cursor
}

// View renders the basket from its last props.
func (b *Basket) View() string {
	lines := []string{styles.Title.Render("Basket")}

	if len(b.props.Items) == 0 {
		lines = append(lines, styles.Subtitle.Render("The basket is empty"))
	}
	for i, p := range b.props.Items {
		lines = append(lines, b.row.Render(CardProps{
			Product:  p,
			Index:    i + 1,
			Selected: i == b.cursor,
		}))
	}

	total := styles.Muted.Render("Total: ") + styles.Price.Render(FormatAmount(b.props.Total))
	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		button(LabelCheckout, b.CheckoutEnabled(), false),
		"  ",
		total,
		"  ",
		styles.Muted.Render(fmt.Sprintf("(%d)", b.props.Selected)),
	)

	lines = append(lines, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Mode implements Component.
func (b *Basket) Mode() keymap.Mode {
	return keymap.ModeBasket
}

// HandleKey moves the row cursor, removes the highlighted row and starts
// checkout.
func (b *Basket) HandleKey(msg tea.KeyMsg) tea.Cmd {
	cmd, ok := keys.GetBinding(msg, keymap.ModeBasket)
	if !ok {
		return nil
	}

	switch cmd {
	case keymap.CmdUp:
		if b.cursor > 0 {
			b.cursor--
		}
	case keymap.CmdDown:
		if b.cursor < len(b.props.Items)-1 {
			b.cursor++
		}
	case keymap.CmdDelete:
		if b.cursor < len(b.props.Items) {
			b.events.Publish(event.NewCardEvent(event.CardDeleteFromCart, b.props.Items[b.cursor]))
		}
	case keymap.CmdSubmit:
		if b.CheckoutEnabled() {
			b.events.Publish(event.NewSignal(event.OrderOpen))
		}
	}
	return nil
}
