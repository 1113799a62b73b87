package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
	"github.com/Iron-Ham/larek/internal/util"
)

// galleryCardHeight is the height of a gallery card including its border.
const galleryCardHeight = 5

// pageChrome is the number of lines taken by the header, banner and help bar.
const pageChrome = 6

// Page is the storefront screen: header with the basket counter, an optional
// error banner and the product gallery. While a modal is open the page is
// locked and shows no cursor.
type Page struct {
	events Emitter
	card   *Card

	products []model.Product
	visible  []model.Product
	loaded   bool

	cursor    int
	rowOffset int
	counter   int
	locked    bool
	errMsg    string

	filtering   bool
	filterInput textinput.Model
	filterText  string
	filterErr   string
	pattern     *util.TitleMatcher

	width  int
	height int
}

// NewPage creates a page whose gallery cards are cardWidth wide.
func NewPage(events Emitter, cardWidth int) *Page {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "title glob, e.g. *bug*"
	ti.CharLimit = 64

	return &Page{
		events:      events,
		card:        NewCard(CardGallery, cardWidth),
		filterInput: ti,
		width:       80,
		height:      24,
	}
}

// SetGallery replaces the products shown in the gallery.
func (p *Page) SetGallery(products []model.Product) {
	p.products = append([]model.Product(nil), products...)
	p.loaded = true
	p.applyFilter()
}

// Gallery returns the products currently shown, after filtering.
func (p *Page) Gallery() []model.Product {
	return append([]model.Product(nil), p.visible...)
}

// SetCounter sets the basket counter in the header.
func (p *Page) SetCounter(n int) {
	p.counter = n
}

// Counter returns the basket counter.
func (p *Page) Counter() int {
	return p.counter
}

// SetLocked locks the page while a modal is open.
func (p *Page) SetLocked(locked bool) {
	p.locked = locked
}

// Locked reports whether the page is locked.
func (p *Page) Locked() bool {
	return p.locked
}

// SetError shows msg in the error banner. An empty msg hides the banner.
func (p *Page) SetError(msg string) {
	p.errMsg = msg
}

// Error returns the banner message.
func (p *Page) Error() string {
	return p.errMsg
}

// SetSize sets the area the page renders into.
func (p *Page) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.filterInput.Width = max(10, width-4)
	p.clampCursor()
}

// Selected returns the product under the cursor.
func (p *Page) Selected() (model.Product, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return model.Product{}, false
	}
	return p.visible[p.cursor], true
}

// Filter returns the active title filter.
func (p *Page) Filter() string {
	return p.filterText
}

// Mode returns the key mode of the page.
func (p *Page) Mode() keymap.Mode {
	if p.filtering {
		return keymap.ModeFilter
	}
	return keymap.ModeGallery
}

// HandleKey moves the cursor, opens products and the basket, and edits the
// filter. It returns tea.Quit when the user quits.
func (p *Page) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if p.locked {
		return nil
	}
	if p.filtering {
		return p.handleFilterKey(msg)
	}

	cmd, ok := keys.GetBinding(msg, keymap.ModeGallery)
	if !ok {
		return nil
	}

	cols := p.columns()
	switch cmd {
	case keymap.CmdLeft:
		p.moveCursor(-1)
	case keymap.CmdRight:
		p.moveCursor(1)
	case keymap.CmdUp:
		p.moveCursor(-cols)
	case keymap.CmdDown:
		p.moveCursor(cols)
	case keymap.CmdFirst:
		p.cursor = 0
		p.clampCursor()
	case keymap.CmdLast:
		p.cursor = len(p.visible) - 1
		p.clampCursor()
	case keymap.CmdSelect:
		if product, ok := p.Selected(); ok {
			p.events.Publish(event.NewCardEvent(event.CardSelect, product))
		}
	case keymap.CmdOpenBasket:
		p.events.Publish(event.NewSignal(event.BasketOpen))
	case keymap.CmdCheckout:
		if p.counter > 0 {
			p.events.Publish(event.NewSignal(event.OrderStart))
		}
	case keymap.CmdEnterFilter:
		p.filtering = true
		p.filterInput.SetValue(p.filterText)
		p.filterInput.CursorEnd()
		return p.filterInput.Focus()
	case keymap.CmdClearFilter:
		p.errMsg = ""
		p.setFilter("")
	case keymap.CmdQuit:
		return tea.Quit
	}
	return nil
}

func (p *Page) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := keys.GetBinding(msg, keymap.ModeFilter); ok {
		switch cmd {
		case keymap.CmdApplyFilter:
			p.filtering = false
			p.filterInput.Blur()
			return nil
		case keymap.CmdCancelFilter:
			p.filtering = false
			p.filterInput.Blur()
			p.setFilter("")
			return nil
		case keymap.CmdQuit:
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(msg)
	p.setFilter(p.filterInput.Value())
	return cmd
}

// setFilter compiles text as a case-insensitive title glob. Text without
// glob syntax matches as a substring. An invalid pattern keeps the previous
// filter and is reported under the input.
func (p *Page) setFilter(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		p.filterText, p.filterErr, p.pattern = "", "", nil
		p.applyFilter()
		return
	}

	m, err := util.CompileTitleMatcher(text)
	if err != nil {
		p.filterErr = "invalid pattern"
		return
	}
	p.filterText, p.filterErr, p.pattern = text, "", m
	p.applyFilter()
}

func (p *Page) applyFilter() {
	if p.pattern == nil {
		p.visible = p.products
	} else {
		p.visible = nil
		for _, product := range p.products {
			if p.pattern.Match(product.Title) {
				p.visible = append(p.visible, product)
			}
		}
	}
	p.clampCursor()
}

func (p *Page) moveCursor(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.visible) {
		return
	}
	p.cursor = next
	p.clampCursor()
}

func (p *Page) clampCursor() {
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}

	// Keep the cursor row on screen
	row := p.cursor / p.columns()
	rows := p.visibleRows()
	if row < p.rowOffset {
		p.rowOffset = row
	} else if row >= p.rowOffset+rows {
		p.rowOffset = row - rows + 1
	}
}

func (p *Page) columns() int {
	return max(1, p.width/p.card.Width())
}

func (p *Page) visibleRows() int {
	return max(1, (p.height-pageChrome)/galleryCardHeight)
}

// View renders the page.
func (p *Page) View() string {
	sections := []string{p.renderHeader()}

	if p.errMsg != "" {
		sections = append(sections, styles.ErrorBanner.Render(p.errMsg))
	}
	if p.filtering || p.filterText != "" {
		sections = append(sections, p.renderFilter())
	}

	sections = append(sections, p.renderGallery())
	if !p.locked {
		sections = append(sections, HelpBar(p.Mode()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *Page) renderHeader() string {
	title := styles.Title.UnsetMarginBottom().Render("WEB-LAREK")
	counter := styles.Counter.Render(fmt.Sprintf("Basket %d", p.counter))
	if hint := keyHint(keymap.CmdOpenBasket, keymap.ModeGallery); hint != "" {
		counter += " " + hint
	}

	gap := max(1, p.width-lipgloss.Width(title)-lipgloss.Width(counter))
	return styles.Header.Width(p.width).Render(title + strings.Repeat(" ", gap) + counter)
}

func (p *Page) renderFilter() string {
	var line string
	if p.filtering {
		line = p.filterInput.View()
	} else {
		line = styles.Muted.Render("filter: ") + styles.Primary.Render(p.filterText)
	}
	if p.filterErr != "" {
		line += "  " + styles.ErrorMsg.Render(p.filterErr)
	}
	return line
}

func (p *Page) renderGallery() string {
	switch {
	case !p.loaded:
		return styles.Subtitle.Render("Loading products...")
	case len(p.visible) == 0 && p.filterText != "":
		return styles.Subtitle.Render(fmt.Sprintf("No products match %q", p.filterText))
	case len(p.visible) == 0:
		return styles.Subtitle.Render("The shop is empty")
	}

	cols := p.columns()
	first := p.rowOffset * cols
	last := min(len(p.visible), first+p.visibleRows()*cols)

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, p.card.Render(CardProps{
				Product:  p.visible[i],
				Selected: !p.locked && i == p.cursor,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if last < len(p.visible) || first > 0 {
		rows = append(rows, styles.Muted.Render(fmt.Sprintf("%d-%d of %d", first+1, last, len(p.visible))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
