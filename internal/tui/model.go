package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/api"
	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/presenter"
	"github.com/Iron-Ham/larek/internal/store"
	"github.com/Iron-Ham/larek/internal/tui/msg"
	"github.com/Iron-Ham/larek/internal/tui/styles"
	"github.com/Iron-Ham/larek/internal/tui/view"
)

// Options configures the shop UI.
type Options struct {
	// Shop is the API the UI loads products from and sends orders to.
	Shop api.Shop
	// Logger receives diagnostics; nil discards them.
	Logger *logging.Logger
	// CardWidth is the gallery card width, clamped to the allowed range.
	CardWidth int
	// Theme is a built-in theme name; unknown names use the default.
	Theme string
}

// outbox holds orders the presenter handed over during an Update. They are
// turned into commands before Update returns.
type outbox struct {
	pending  []model.OrderRequest
	inFlight bool
}

// Model holds the TUI application state
type Model struct {
	ctx    context.Context
	shop   api.Shop
	logger *logging.Logger

	bus       *event.Bus
	store     *store.Store
	presenter *presenter.Presenter
	orders    *outbox

	width  int
	height int
	ready  bool
}

// NewModel creates the model and wires the store, the presenter and the
// views onto a fresh event bus.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	if styles.IsValidTheme(opts.Theme) {
		styles.SetActiveTheme(styles.ThemeName(opts.Theme))
	}

	bus := event.NewBus(event.WithLogger(logger))
	st := store.New(bus, logger)
	orders := &outbox{}

	p := presenter.New(bus, st, func(req model.OrderRequest) {
		orders.pending = append(orders.pending, req)
	}, presenter.WithLogger(logger), presenter.WithCardWidth(opts.CardWidth))
	p.Start()

	return Model{
		ctx:       ctx,
		shop:      opts.Shop,
		logger:    logger.WithComponent("tui"),
		bus:       bus,
		store:     st,
		presenter: p,
		orders:    orders,
	}
}

// Init starts loading the catalog.
func (m Model) Init() tea.Cmd {
	return msg.LoadProducts(m.ctx, m.shop)
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.presenter.Page().SetSize(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if modal := m.presenter.Modal(); modal.IsOpen() {
			cmd = modal.HandleKey(message)
		} else {
			cmd = m.presenter.Page().HandleKey(message)
		}
		return m, tea.Batch(cmd, m.flushOrders())

	case msg.ProductsMsg:
		if message.Err != nil {
			m.bus.Publish(event.NewFailureEvent(event.ProductsLoadFailed, message.Err))
			return m, msg.RingBell()
		}
		m.bus.Publish(event.NewProductsLoadedEvent(message.Products))
		return m, nil

	case msg.OrderResultMsg:
		m.orders.inFlight = false
		if message.Err != nil {
			m.bus.Publish(event.NewFailureEvent(event.OrderFailed, message.Err))
			return m, msg.RingBell()
		}
		m.bus.Publish(event.NewOrderSuccessEvent(message.Result))
		return m, nil
	}

	return m, nil
}

// flushOrders turns queued orders into submit commands. Only one order is
// in flight at a time; a second Pay press while waiting is dropped.
func (m Model) flushOrders() tea.Cmd {
	if len(m.orders.pending) == 0 {
		return nil
	}
	req := m.orders.pending[0]
	m.orders.pending = nil

	if m.orders.inFlight {
		m.logger.Warn("order already in flight, dropping duplicate submit")
		return nil
	}
	m.orders.inFlight = true
	return msg.SubmitOrder(m.ctx, m.shop, req)
}

// View renders the page, or the modal on top of it.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	modal := m.presenter.Modal()
	if !modal.IsOpen() {
		return m.presenter.Page().View()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.View())
}

// Close unsubscribes the presenter from the bus.
func (m Model) Close() {
	m.presenter.Stop()
}

// Page exposes the page view, mainly for tests.
func (m Model) Page() *view.Page {
	return m.presenter.Page()
}

// Modal exposes the modal view, mainly for tests.
func (m Model) Modal() *view.Modal {
	return m.presenter.Modal()
}
