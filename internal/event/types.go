package event

import (
	"regexp"
	"time"

	"github.com/Iron-Ham/larek/internal/model"
)

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns the event name used for subscription matching.
	// Convention: "category:action" (e.g., "basket:add-product", "order:submit").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Store change events.
const (
	ProductsChanged     = "products:changed"
	ProductPreview      = "product:preview"
	BasketAddProduct    = "basket:add-product"
	BasketRemoveProduct = "basket:remove-product"
	BasketClear         = "basket:clear"
	OrderClear          = "order:clear"
	FormErrorsChange    = "formErrors:change"
)

// User intent events emitted by views.
const (
	CardSelect         = "card:select"
	CardAddToCart      = "card:addtocart"
	CardDeleteFromCart = "card:deletefromcart"
	BasketOpen         = "basket:open"
	OrderStart         = "order:start"
	OrderOpen          = "order:open"
	PaymentChosen      = "payment:choosed"
	OrderSubmit        = "order:submit"
	ContactsSubmit     = "contacts:submit"
	SuccessClose       = "success:close"
)

// Shell events: modal lifecycle and network outcomes.
const (
	ModalOpen          = "modal:open"
	ModalClose         = "modal:close"
	ProductsLoaded     = "products:loaded"
	ProductsLoadFailed = "products:load-failed"
	OrderSuccess       = "order:success"
	OrderFailed        = "order:failed"
)

// Form names used as the prefix of field change events.
const (
	FormOrder    = "order"
	FormContacts = "contacts"
)

var (
	// OrderFieldChange matches "order.<field>:change". Only the start is anchored.
	OrderFieldChange = regexp.MustCompile(`^order\..*:change`)
	// ContactsFieldChange matches "contacts.<field>:change". Only the start is anchored.
	ContactsFieldChange = regexp.MustCompile(`^contacts\..*:change`)
)

// -----------------------------------------------------------------------------
// Signal Events
// -----------------------------------------------------------------------------

// SignalEvent is an event that carries nothing but its name,
// e.g. "basket:open" or "order:clear".
type SignalEvent struct {
	baseEvent
}

// NewSignal creates a SignalEvent with the given name.
func NewSignal(name string) SignalEvent {
	return SignalEvent{baseEvent: newBaseEvent(name)}
}

// -----------------------------------------------------------------------------
// Store Events
// -----------------------------------------------------------------------------

// ProductsChangedEvent is emitted when the catalog is replaced.
type ProductsChangedEvent struct {
	baseEvent
	Products []model.Product
}

// NewProductsChangedEvent creates a ProductsChangedEvent.
func NewProductsChangedEvent(products []model.Product) ProductsChangedEvent {
	return ProductsChangedEvent{
		baseEvent: newBaseEvent(ProductsChanged),
		Products:  products,
	}
}

// ProductPreviewEvent is emitted when a product is selected for preview.
type ProductPreviewEvent struct {
	baseEvent
	ProductID string
}

// NewProductPreviewEvent creates a ProductPreviewEvent.
func NewProductPreviewEvent(productID string) ProductPreviewEvent {
	return ProductPreviewEvent{
		baseEvent: newBaseEvent(ProductPreview),
		ProductID: productID,
	}
}

// BasketAddProductEvent is emitted when a product enters the basket.
type BasketAddProductEvent struct {
	baseEvent
	Product model.Product
}

// NewBasketAddProductEvent creates a BasketAddProductEvent.
func NewBasketAddProductEvent(product model.Product) BasketAddProductEvent {
	return BasketAddProductEvent{
		baseEvent: newBaseEvent(BasketAddProduct),
		Product:   product,
	}
}

// BasketRemoveProductEvent is emitted when a product leaves the basket.
type BasketRemoveProductEvent struct {
	baseEvent
	ProductID string
}

// NewBasketRemoveProductEvent creates a BasketRemoveProductEvent.
func NewBasketRemoveProductEvent(productID string) BasketRemoveProductEvent {
	return BasketRemoveProductEvent{
		baseEvent: newBaseEvent(BasketRemoveProduct),
		ProductID: productID,
	}
}

// FormErrorsChangeEvent carries the complete error map after every validation.
type FormErrorsChangeEvent struct {
	baseEvent
	Errors model.FormErrors
}

// NewFormErrorsChangeEvent creates a FormErrorsChangeEvent.
// The map is cloned so handlers cannot mutate store state.
func NewFormErrorsChangeEvent(errs model.FormErrors) FormErrorsChangeEvent {
	return FormErrorsChangeEvent{
		baseEvent: newBaseEvent(FormErrorsChange),
		Errors:    errs.Clone(),
	}
}

// -----------------------------------------------------------------------------
// Intent Events
// -----------------------------------------------------------------------------

// CardEvent is emitted by a product card: select, add to cart, or delete from cart.
type CardEvent struct {
	baseEvent
	Product model.Product
}

// NewCardEvent creates a CardEvent with the given name.
func NewCardEvent(name string, product model.Product) CardEvent {
	return CardEvent{
		baseEvent: newBaseEvent(name),
		Product:   product,
	}
}

// PaymentChosenEvent is emitted when a payment toggle is pressed.
type PaymentChosenEvent struct {
	baseEvent
	Method model.PaymentMethod
}

// NewPaymentChosenEvent creates a PaymentChosenEvent.
func NewPaymentChosenEvent(method model.PaymentMethod) PaymentChosenEvent {
	return PaymentChosenEvent{
		baseEvent: newBaseEvent(PaymentChosen),
		Method:    method,
	}
}

// FieldChangeEvent is emitted when a form input changes.
// Its name is "<form>.<field>:change".
type FieldChangeEvent struct {
	baseEvent
	Form  string
	Field model.OrderField
	Value string
}

// NewFieldChangeEvent creates a FieldChangeEvent.
func NewFieldChangeEvent(form string, field model.OrderField, value string) FieldChangeEvent {
	return FieldChangeEvent{
		baseEvent: newBaseEvent(FieldChangeName(form, field)),
		Form:      form,
		Field:     field,
		Value:     value,
	}
}

// FieldChangeName returns the event name for a field change in a form.
func FieldChangeName(form string, field model.OrderField) string {
	return form + "." + string(field) + ":change"
}

// -----------------------------------------------------------------------------
// Network Outcome Events
// -----------------------------------------------------------------------------

// ProductsLoadedEvent carries the catalog fetched from the API.
type ProductsLoadedEvent struct {
	baseEvent
	Products []model.Product
}

// NewProductsLoadedEvent creates a ProductsLoadedEvent.
func NewProductsLoadedEvent(products []model.Product) ProductsLoadedEvent {
	return ProductsLoadedEvent{
		baseEvent: newBaseEvent(ProductsLoaded),
		Products:  products,
	}
}

// FailureEvent reports a failed network operation.
type FailureEvent struct {
	baseEvent
	Err error
}

// NewFailureEvent creates a FailureEvent with the given name
// (ProductsLoadFailed or OrderFailed).
func NewFailureEvent(name string, err error) FailureEvent {
	return FailureEvent{
		baseEvent: newBaseEvent(name),
		Err:       err,
	}
}

// OrderSuccessEvent is emitted when the API accepted an order.
type OrderSuccessEvent struct {
	baseEvent
	Result model.OrderResult
}

// NewOrderSuccessEvent creates an OrderSuccessEvent.
func NewOrderSuccessEvent(result model.OrderResult) OrderSuccessEvent {
	return OrderSuccessEvent{
		baseEvent: newBaseEvent(OrderSuccess),
		Result:    result,
	}
}
