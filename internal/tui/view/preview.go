package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
)

// Button labels of the preview.
const (
	LabelBuy    = "Buy"
	LabelRemove = "Remove from basket"
)

// PreviewProps is what a Preview renders.
type PreviewProps struct {
	Product  model.Product
	InBasket bool
}

// Preview shows one product in the modal with a buy / remove button.
// The button is disabled for products without a price.
type Preview struct {
	events Emitter
	card   *Card
	props  PreviewProps
}

// NewPreview creates a preview of the given outer width.
func NewPreview(events Emitter, width int) *Preview {
	return &Preview{
		events: events,
		card:   NewCard(CardPreview, width),
	}
}

// Render stores props and renders the preview.
func (p *Preview) Render(props PreviewProps) string {
	p.props = props
	return p.View()
}

// Product returns the product being previewed.
func (p *Preview) Product() model.Product {
	return p.props.Product
}

// ButtonLabel returns the current button label.
func (p *Preview) ButtonLabel() string {
	if p.props.InBasket {
		return LabelRemove
	}
	return LabelBuy
}

// ButtonEnabled reports whether the button reacts to presses.
func (p *Preview) ButtonEnabled() bool {
	return p.props.Product.Purchasable()
}

// View renders the preview from its last props.
func (p *Preview) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.card.Render(CardProps{Product: p.props.Product}),
		"",
		button(p.ButtonLabel(), p.ButtonEnabled(), p.props.InBasket),
	)
}

// Mode implements Component.
func (p *Preview) Mode() keymap.Mode {
	return keymap.ModePreview
}

// HandleKey toggles the product in the basket and flips the button label.
func (p *Preview) HandleKey(msg tea.KeyMsg) tea.Cmd {
	cmd, ok := keys.GetBinding(msg, keymap.ModePreview)
	if !ok || cmd != keymap.CmdToggleCart || !p.ButtonEnabled() {
		return nil
	}

	if p.props.InBasket {
		p.events.Publish(event.NewCardEvent(event.CardDeleteFromCart, p.props.Product))
		p.props.InBasket = false
	} else {
		p.events.Publish(event.NewCardEvent(event.CardAddToCart, p.props.Product))
		p.props.InBasket = true
	}
	return nil
}
