// Package presenter wires the store and the views together through the
// event bus. It is the only package that knows the whole event vocabulary:
// views publish intents, the presenter calls store mutators, and the store's
// change events come back here to re-render the affected views.
package presenter

import (
	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/store"
	"github.com/Iron-Ham/larek/internal/tui/view"
)

// Submitter sends a checked order to the shop. It must not block: the
// outcome comes back as order:success or order:failed.
type Submitter func(model.OrderRequest)

// Presenter owns the views and the subscriptions that drive them.
type Presenter struct {
	bus    *event.Bus
	store  *store.Store
	submit Submitter
	logger *logging.Logger

	page     *view.Page
	modal    *view.Modal
	preview  *view.Preview
	basket   *view.Basket
	order    *view.OrderForm
	contacts *view.ContactsForm
	success  *view.Success

	subs []string
}

// Option configures a Presenter.
type Option func(*options)

type options struct {
	logger    *logging.Logger
	cardWidth int
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCardWidth sets the width of gallery and preview cards.
func WithCardWidth(w int) Option {
	return func(o *options) {
		o.cardWidth = w
	}
}

// New creates a presenter. Views publish on bus; orders go to submit.
// Call Start to subscribe.
func New(bus *event.Bus, st *store.Store, submit Submitter, opts ...Option) *Presenter {
	o := options{logger: logging.NopLogger(), cardWidth: view.DefaultCardWidth}
	for _, opt := range opts {
		opt(&o)
	}

	width := view.ClampCardWidth(o.cardWidth)
	return &Presenter{
		bus:      bus,
		store:    st,
		submit:   submit,
		logger:   o.logger.WithComponent("presenter"),
		page:     view.NewPage(bus, width),
		modal:    view.NewModal(bus),
		preview:  view.NewPreview(bus, width+10),
		basket:   view.NewBasket(bus, width+20),
		order:    view.NewOrderForm(bus),
		contacts: view.NewContactsForm(bus),
		success:  view.NewSuccess(bus),
	}
}

// Page returns the page view.
func (p *Presenter) Page() *view.Page {
	return p.page
}

// Modal returns the modal view.
func (p *Presenter) Modal() *view.Modal {
	return p.modal
}

// Start subscribes every handler. Calling it twice is a no-op.
func (p *Presenter) Start() {
	if len(p.subs) > 0 {
		return
	}

	on := func(name string, h event.Handler) {
		p.subs = append(p.subs, p.bus.Subscribe(name, h))
	}

	// Diagnostics first, so the log shows an event before its effects.
	p.subs = append(p.subs, p.bus.SubscribeAll(p.logEvent))

	// Catalog
	on(event.ProductsLoaded, p.onProductsLoaded)
	on(event.ProductsLoadFailed, p.onFailure)
	on(event.ProductsChanged, p.onProductsChanged)

	// Modal and page lock
	on(event.ModalOpen, func(event.Event) { p.page.SetLocked(true) })
	on(event.ModalClose, func(event.Event) { p.page.SetLocked(false) })

	// Cards and basket
	on(event.CardSelect, p.onCardSelect)
	on(event.ProductPreview, p.onProductPreview)
	on(event.CardAddToCart, p.onCardAddToCart)
	on(event.CardDeleteFromCart, p.onCardDeleteFromCart)
	on(event.BasketAddProduct, p.onBasketChanged)
	on(event.BasketRemoveProduct, p.onBasketChanged)
	on(event.BasketClear, p.onBasketChanged)
	on(event.BasketOpen, p.onBasketOpen)

	// Checkout
	on(event.OrderStart, p.onOrderStart)
	on(event.OrderOpen, p.onOrderOpen)
	on(event.PaymentChosen, p.onPaymentChosen)
	p.subs = append(p.subs,
		p.bus.SubscribePattern(event.OrderFieldChange, p.onFieldChange),
		p.bus.SubscribePattern(event.ContactsFieldChange, p.onFieldChange),
	)
	on(event.FormErrorsChange, p.onFormErrorsChange)
	on(event.OrderSubmit, p.onOrderSubmit)
	on(event.ContactsSubmit, p.onContactsSubmit)
	on(event.OrderSuccess, p.onOrderSuccess)
	on(event.OrderFailed, p.onFailure)
	on(event.SuccessClose, func(event.Event) { p.modal.Close() })
}

// Stop removes every subscription made by Start.
func (p *Presenter) Stop() {
	for _, id := range p.subs {
		p.bus.Unsubscribe(id)
	}
	p.subs = nil
}

func (p *Presenter) logEvent(e event.Event) {
	args := []any{"event", e.EventType()}
	switch ev := e.(type) {
	case event.ProductsLoadedEvent:
		args = append(args, "count", len(ev.Products))
	case event.ProductsChangedEvent:
		args = append(args, "count", len(ev.Products))
	case event.CardEvent:
		args = append(args, "product_id", ev.Product.ID)
	case event.ProductPreviewEvent:
		args = append(args, "product_id", ev.ProductID)
	case event.BasketAddProductEvent:
		args = append(args, "product_id", ev.Product.ID)
	case event.BasketRemoveProductEvent:
		args = append(args, "product_id", ev.ProductID)
	case event.PaymentChosenEvent:
		args = append(args, "method", string(ev.Method))
	case event.FieldChangeEvent:
		// Values are personal data; log the field only.
		args = append(args, "field", string(ev.Field))
	case event.FormErrorsChangeEvent:
		args = append(args, "errors", len(ev.Errors))
	case event.FailureEvent:
		args = append(args, "error", ev.Err)
	case event.OrderSuccessEvent:
		args = append(args, "order_id", ev.Result.ID)
	}
	p.logger.Debug("event", args...)
}

func (p *Presenter) onProductsLoaded(e event.Event) {
	ev, ok := e.(event.ProductsLoadedEvent)
	if !ok {
		return
	}
	p.page.SetError("")
	p.store.SetProducts(ev.Products)
}

func (p *Presenter) onProductsChanged(e event.Event) {
	if ev, ok := e.(event.ProductsChangedEvent); ok {
		p.page.SetGallery(ev.Products)
	}
}

func (p *Presenter) onCardSelect(e event.Event) {
	if ev, ok := e.(event.CardEvent); ok {
		p.store.SelectProduct(ev.Product.ID)
	}
}

func (p *Presenter) onProductPreview(e event.Event) {
	ev, ok := e.(event.ProductPreviewEvent)
	if !ok {
		return
	}
	product, found := p.store.Product(ev.ProductID)
	if !found {
		p.logger.WithProduct(ev.ProductID).Warn("preview of unknown product")
		return
	}

	p.preview.Render(view.PreviewProps{
		Product:  product,
		InBasket: p.store.InBasket(product.ID),
	})
	p.modal.Render(p.preview)
}

func (p *Presenter) onCardAddToCart(e event.Event) {
	ev, ok := e.(event.CardEvent)
	if !ok {
		return
	}
	if !ev.Product.Purchasable() {
		p.logger.WithProduct(ev.Product.ID).Warn("refusing to add unpriced product")
		return
	}
	p.store.AddProductToBasket(ev.Product)
}

func (p *Presenter) onCardDeleteFromCart(e event.Event) {
	ev, ok := e.(event.CardEvent)
	if !ok {
		return
	}
	p.store.RemoveProductFromBasket(ev.Product.ID)

	// A delete from the basket view repaints it in place
	if p.modal.Content() == view.Component(p.basket) {
		p.bus.Publish(event.NewSignal(event.BasketOpen))
	}
}

func (p *Presenter) onBasketChanged(event.Event) {
	p.page.SetCounter(p.store.BasketCount())
}

func (p *Presenter) onBasketOpen(event.Event) {
	p.basket.Render(view.BasketProps{
		Items:    p.store.Basket(),
		Total:    p.store.TotalPrice(),
		Selected: p.store.BasketCount(),
	})
	p.modal.Render(p.basket)
}

func (p *Presenter) onOrderStart(event.Event) {
	if p.store.IsFirstFormFill() {
		p.renderContacts()
		return
	}
	p.renderOrder()
}

func (p *Presenter) onOrderOpen(event.Event) {
	p.renderOrder()
}

func (p *Presenter) onOrderSubmit(event.Event) {
	p.renderContacts()
}

// renderOrder paints the delivery step from the draft. Errors stay hidden
// until the first edit.
func (p *Presenter) renderOrder() {
	o := p.store.Order()
	p.order.Render(view.OrderProps{
		Address: o.Address,
		Payment: o.PaymentMethod,
		Valid:   store.Check(o, model.FieldAddress).Empty(),
	})
	p.modal.Render(p.order)
}

func (p *Presenter) renderContacts() {
	o := p.store.Order()
	p.contacts.Render(view.ContactsProps{
		Email: o.Email,
		Phone: o.Phone,
		Valid: store.Check(o, model.FieldEmail).Empty(),
	})
	p.modal.Render(p.contacts)
}

func (p *Presenter) onPaymentChosen(e event.Event) {
	if ev, ok := e.(event.PaymentChosenEvent); ok {
		p.store.SetOrderField(model.FieldPaymentMethod, string(ev.Method))
	}
}

func (p *Presenter) onFieldChange(e event.Event) {
	if ev, ok := e.(event.FieldChangeEvent); ok {
		p.store.SetOrderField(ev.Field, ev.Value)
	}
}

func (p *Presenter) onFormErrorsChange(e event.Event) {
	ev, ok := e.(event.FormErrorsChangeEvent)
	if !ok {
		return
	}
	errs := ev.Errors

	p.order.SetValid(!errs.Has(model.FieldAddress, model.FieldPaymentMethod))
	p.order.SetErrors(errs.Messages(model.FieldAddress, model.FieldPaymentMethod))

	p.contacts.SetValid(!errs.Has(model.FieldEmail, model.FieldPhone))
	p.contacts.SetErrors(errs.Messages(model.FieldEmail, model.FieldPhone))
}

func (p *Presenter) onContactsSubmit(event.Event) {
	req, err := p.store.OrderRequest()
	if err != nil {
		p.logger.Error("order not submitted", "error", err.Error())
		p.contacts.SetErrors(errors.UserMessage(err))
		return
	}

	p.logger.Info("submitting order", "items", len(req.Items), "total", req.Total.String())
	p.submit(req)
}

func (p *Presenter) onOrderSuccess(e event.Event) {
	ev, ok := e.(event.OrderSuccessEvent)
	if !ok {
		return
	}

	p.logger.WithOrder(ev.Result.ID).Info("order placed", "total", ev.Result.Total.String())
	p.page.SetError("")
	p.success.Render(view.SuccessProps{
		OrderID: ev.Result.ID,
		Total:   ev.Result.Total.Decimal,
	})
	p.modal.Render(p.success)

	p.store.ClearBasket()
	p.store.ClearOrder()
}

func (p *Presenter) onFailure(e event.Event) {
	ev, ok := e.(event.FailureEvent)
	if !ok {
		return
	}
	severity := errors.GetSeverity(ev.Err)
	args := []any{"event", e.EventType(), "error", ev.Err.Error(),
		"severity", severity.String(), "retryable", errors.IsRetryable(ev.Err)}
	if severity >= errors.SeverityError {
		p.logger.Error("request failed", args...)
	} else {
		p.logger.Warn("request failed", args...)
	}
	message := errors.UserMessage(ev.Err)
	p.page.SetError(message)
	// The contacts form is still on screen after a rejected order.
	if e.EventType() == event.OrderFailed {
		p.contacts.SetErrors(message)
	}
}
