package presenter

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/store"
	"github.com/Iron-Ham/larek/internal/testutil"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/view"
)

type harness struct {
	bus       *event.Bus
	store     *store.Store
	p         *Presenter
	rec       *testutil.Recorder
	submitted []model.OrderRequest
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{bus: event.NewBus()}
	h.store = store.New(h.bus, nil)
	h.p = New(h.bus, h.store, func(req model.OrderRequest) {
		h.submitted = append(h.submitted, req)
	})
	h.p.Start()
	t.Cleanup(h.p.Stop)
	h.rec = testutil.NewRecorder().Attach(h.bus)

	h.bus.Publish(event.NewProductsLoadedEvent(testutil.Products()))
	return h
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.p.Modal().HandleKey(runeKey(r))
	}
}

func TestPresenter_ProductsLoaded(t *testing.T) {
	h := newHarness(t)

	assert.Len(t, h.p.Page().Gallery(), 3)
	assert.Len(t, h.store.Products(), 3)
	assert.Empty(t, h.p.Page().Error())
}

func TestPresenter_LoadFailedShowsBanner(t *testing.T) {
	h := newHarness(t)

	h.bus.Publish(event.NewFailureEvent(event.ProductsLoadFailed, errors.ErrTransport))
	assert.Equal(t, errors.UserMessage(errors.ErrTransport), h.p.Page().Error())

	h.bus.Publish(event.NewProductsLoadedEvent(testutil.Products()))
	assert.Empty(t, h.p.Page().Error())
}

func TestPresenter_PreviewAddsToBasket(t *testing.T) {
	h := newHarness(t)
	page, modal := h.p.Page(), h.p.Modal()

	page.HandleKey(key(tea.KeyEnter))
	require.True(t, modal.IsOpen())
	assert.True(t, page.Locked())
	assert.Equal(t, "p1", h.store.SelectedProductID())
	assert.Equal(t, keymap.ModePreview, modal.Mode())

	modal.HandleKey(key(tea.KeyEnter))
	assert.True(t, h.store.InBasket("p1"))
	assert.Equal(t, 1, page.Counter())
	assert.Contains(t, modal.View(), view.LabelRemove)

	modal.HandleKey(key(tea.KeyEsc))
	assert.False(t, modal.IsOpen())
	assert.False(t, page.Locked())
}

func TestPresenter_UnpricedProductNotAdded(t *testing.T) {
	h := newHarness(t)

	p3, ok := h.store.Product("p3")
	require.True(t, ok)
	h.bus.Publish(event.NewCardEvent(event.CardAddToCart, p3))

	assert.False(t, h.store.InBasket("p3"))
	assert.Zero(t, h.rec.Count(event.BasketAddProduct))
}

func TestPresenter_DeleteFromBasketRepaints(t *testing.T) {
	h := newHarness(t)
	for _, id := range []string{"p1", "p2"} {
		p, _ := h.store.Product(id)
		h.bus.Publish(event.NewCardEvent(event.CardAddToCart, p))
	}
	require.Equal(t, 2, h.p.Page().Counter())

	h.p.Page().HandleKey(runeKey('b'))
	modal := h.p.Modal()
	require.True(t, modal.IsOpen())
	assert.Contains(t, modal.View(), "HEX lollipop")

	modal.HandleKey(runeKey('d'))
	assert.Equal(t, 1, h.store.BasketCount())
	assert.Equal(t, 1, h.p.Page().Counter())
	assert.True(t, modal.IsOpen())
	assert.NotContains(t, modal.View(), "+1 hour in a day")
	assert.Contains(t, modal.View(), "HEX lollipop")
}

func TestPresenter_BasketTotals(t *testing.T) {
	h := newHarness(t)
	p1, _ := h.store.Product("p1")
	h.bus.Publish(event.NewCardEvent(event.CardAddToCart, p1))

	h.bus.Publish(event.NewSignal(event.BasketOpen))
	basket, ok := h.p.Modal().Content().(*view.Basket)
	require.True(t, ok, "basket:open should host the basket view")
	assert.True(t, basket.CheckoutEnabled())
	assert.Contains(t, basket.View(), "500 synapses")
	assert.Contains(t, basket.View(), "(1)")

	h.p.Modal().HandleKey(runeKey('d'))
	assert.False(t, basket.CheckoutEnabled())
	assert.Contains(t, basket.View(), "0 synapses")
	assert.Contains(t, basket.View(), "The basket is empty")
}

func TestPresenter_Checkout(t *testing.T) {
	h := newHarness(t)
	page, modal := h.p.Page(), h.p.Modal()

	// Add p1 via the preview.
	page.HandleKey(key(tea.KeyEnter))
	modal.HandleKey(key(tea.KeyEnter))
	modal.HandleKey(key(tea.KeyEsc))

	// Basket, then checkout.
	page.HandleKey(runeKey('b'))
	modal.HandleKey(key(tea.KeyEnter))
	require.Equal(t, 1, h.rec.Count(event.OrderOpen))
	assert.Contains(t, modal.View(), "Payment and delivery")

	// Payment first: the address is still missing.
	modal.HandleKey(key(tea.KeyRight))
	assert.Equal(t, model.PaymentCash, h.store.Order().PaymentMethod)
	assert.Contains(t, modal.View(), store.MsgAddressRequired)

	// Submit is ignored while invalid.
	modal.HandleKey(key(tea.KeyEnter))
	assert.Zero(t, h.rec.Count(event.OrderSubmit))

	modal.HandleKey(key(tea.KeyTab))
	h.typeText("Main st. 1")
	assert.Equal(t, "Main st. 1", h.store.Order().Address)
	assert.Empty(t, h.store.FormErrors())

	modal.HandleKey(key(tea.KeyEnter))
	require.Equal(t, 1, h.rec.Count(event.OrderSubmit))
	assert.Contains(t, modal.View(), "Contacts")

	h.typeText("a@b.co")
	modal.HandleKey(key(tea.KeyTab))
	h.typeText("+79991234567")
	assert.Empty(t, h.store.FormErrors())

	modal.HandleKey(key(tea.KeyEnter))
	require.Len(t, h.submitted, 1)
	req := h.submitted[0]
	assert.Equal(t, []string{"p1"}, req.Items)
	assert.Equal(t, "500", req.Total.String())
	assert.Equal(t, model.PaymentCash, req.PaymentMethod)
	assert.Equal(t, "a@b.co", req.Email)

	h.bus.Publish(event.NewOrderSuccessEvent(model.OrderResult{
		ID:    "order-1",
		Total: model.NewAmount(decimal.NewFromInt(500)),
	}))
	assert.Contains(t, modal.View(), "order-1")
	assert.Zero(t, h.store.BasketCount())
	assert.Zero(t, page.Counter())
	assert.Equal(t, model.Order{}, h.store.Order())

	modal.HandleKey(key(tea.KeyEnter))
	assert.False(t, modal.IsOpen())
	assert.False(t, page.Locked())
}

func TestPresenter_OrderStartSkipsCompletedDelivery(t *testing.T) {
	h := newHarness(t)
	p1, _ := h.store.Product("p1")
	h.bus.Publish(event.NewCardEvent(event.CardAddToCart, p1))

	h.p.Page().HandleKey(runeKey('c'))
	assert.Contains(t, h.p.Modal().View(), "Payment and delivery")
	h.p.Modal().HandleKey(key(tea.KeyEsc))

	h.store.SetOrderField(model.FieldAddress, "Main st. 1")
	h.store.SetOrderField(model.FieldPaymentMethod, string(model.PaymentCard))

	h.p.Page().HandleKey(runeKey('c'))
	assert.Contains(t, h.p.Modal().View(), "Contacts")
}

func TestPresenter_CheckoutNeedsBasket(t *testing.T) {
	h := newHarness(t)

	h.p.Page().HandleKey(runeKey('c'))
	assert.False(t, h.p.Modal().IsOpen())
	assert.Zero(t, h.rec.Count(event.OrderStart))
}

func TestPresenter_ContactsSubmitWithEmptyBasket(t *testing.T) {
	h := newHarness(t)

	h.bus.Publish(event.NewSignal(event.ContactsSubmit))
	assert.Empty(t, h.submitted)
}

func TestPresenter_OrderFailedKeepsBasket(t *testing.T) {
	h := newHarness(t)
	p1, _ := h.store.Product("p1")
	h.bus.Publish(event.NewCardEvent(event.CardAddToCart, p1))

	h.bus.Publish(event.NewSignal(event.OrderSubmit))
	require.True(t, h.p.Modal().IsOpen())

	err := errors.NewAPIError("POST", "/order", 400, "Invalid email")
	h.bus.Publish(event.NewFailureEvent(event.OrderFailed, err))

	assert.Equal(t, 1, h.store.BasketCount())
	assert.Equal(t, "Invalid email", h.p.Page().Error())
	assert.True(t, h.p.Modal().IsOpen())
	assert.Contains(t, h.p.Modal().View(), "Invalid email")
}

func TestPresenter_FailureLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{name: "timeout", err: errors.ErrTimeout, wantLevel: `"level":"ERROR"`},
		{name: "rejected order", err: errors.NewValidationError("Invalid email"), wantLevel: `"level":"WARN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bus := event.NewBus()
			p := New(bus, store.New(bus, nil), func(model.OrderRequest) {},
				WithLogger(logging.NewWriterLogger(&buf, logging.LevelInfo)))
			p.Start()
			defer p.Stop()

			bus.Publish(event.NewFailureEvent(event.OrderFailed, tt.err))

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"msg":"request failed"`)
		})
	}
}

func TestPresenter_Stop(t *testing.T) {
	bus := event.NewBus()
	p := New(bus, store.New(bus, nil), func(model.OrderRequest) {})

	p.Start()
	p.Start()
	require.Positive(t, bus.SubscriptionCount())

	p.Stop()
	assert.Zero(t, bus.SubscriptionCount())
}
