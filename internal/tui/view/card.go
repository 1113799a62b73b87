package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/styles"
	"github.com/Iron-Ham/larek/internal/util"
)

// CardVariant selects the layout a Card renders.
type CardVariant int

const (
	// CardGallery is the compact boxed card in the page grid.
	CardGallery CardVariant = iota
	// CardPreview is the full card with description shown in the modal.
	CardPreview
	// CardBasket is a single numbered basket row.
	CardBasket
)

// cardChrome is the width taken by the card border and padding.
const cardChrome = 4

// CardProps is what a Card renders.
type CardProps struct {
	Product model.Product
	// Index is the 1-based row number of a basket row.
	Index int
	// Selected highlights the card under the cursor.
	Selected bool
}

// Card renders a product. It holds no state besides its layout.
type Card struct {
	variant CardVariant
	width   int
}

// NewCard creates a card of the given variant and outer width.
func NewCard(variant CardVariant, width int) *Card {
	return &Card{variant: variant, width: ClampCardWidth(width)}
}

// Width returns the outer width of the card.
func (c *Card) Width() int {
	return c.width
}

// Render renders the card for props.
func (c *Card) Render(props CardProps) string {
	switch c.variant {
	case CardPreview:
		return c.renderPreview(props)
	case CardBasket:
		return c.renderBasketRow(props)
	default:
		return c.renderGallery(props)
	}
}

func (c *Card) renderGallery(props CardProps) string {
	inner := c.width - cardChrome
	p := props.Product

	lines := []string{
		styles.CategoryBadge(p.Category).Render(util.Truncate(p.Category, inner-2)),
		styles.CardTitle.Render(util.Truncate(p.Title, inner)),
		priceStyle(p.Price).Render(FormatPrice(p.Price)),
	}

	box := styles.Card
	if props.Selected {
		box = styles.CardSelected
	}
	return box.Width(c.width - 2).Render(strings.Join(lines, "\n"))
}

func (c *Card) renderPreview(props CardProps) string {
	inner := c.width - cardChrome
	p := props.Product

	lines := []string{
		styles.CategoryBadge(p.Category).Render(util.Truncate(p.Category, inner-2)),
		"",
		styles.CardTitle.Render(util.Truncate(p.Title, inner)),
	}
	if p.Description != "" {
		lines = append(lines, "")
		for _, l := range util.Wrap(p.Description, inner) {
			lines = append(lines, styles.Text.Render(l))
		}
	}
	lines = append(lines, "", priceStyle(p.Price).Render(FormatPrice(p.Price)))

	return lipgloss.NewStyle().Width(inner).Render(strings.Join(lines, "\n"))
}

func (c *Card) renderBasketRow(props CardProps) string {
	p := props.Product
	marker := "  "
	if props.Selected {
		marker = styles.Primary.Render("> ")
	}

	index := styles.Muted.Render(fmt.Sprintf("%d.", props.Index))
	price := FormatPrice(p.Price)

	// marker + index + space + title + gap + price
	titleWidth := c.width - 2 - lipgloss.Width(index) - 1 - lipgloss.Width(price) - 2
	title := util.PadRight(util.Truncate(p.Title, titleWidth), titleWidth)

	titleStyle := styles.Text
	if props.Selected {
		titleStyle = styles.CardTitle
	}
	return marker + index + " " + titleStyle.Render(title) + "  " + priceStyle(p.Price).Render(price)
}

func priceStyle(p model.Price) lipgloss.Style {
	if !p.Valid {
		return styles.Muted
	}
	return styles.Price
}
