// Package store owns the storefront state: the catalog, the basket and the
// draft order. Every mutation publishes a change event; order fields are
// validated on every write.
package store

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
)

// Publisher is the part of the event bus the store needs.
type Publisher interface {
	Publish(event.Event)
}

// Store is the single owner of application state. It is not safe for
// concurrent use; it belongs to the UI loop.
type Store struct {
	events Publisher
	logger *logging.Logger

	products   []model.Product
	basket     []model.Product
	order      model.Order
	formErrors model.FormErrors
	selectedID string
}

// New creates an empty store that publishes to events.
func New(events Publisher, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{
		events:     events,
		logger:     logger.WithComponent("store"),
		formErrors: model.FormErrors{},
	}
}

// SetProducts replaces the catalog.
func (s *Store) SetProducts(products []model.Product) {
	s.products = slices.Clone(products)
	s.logger.Info("catalog replaced", "count", len(products))
	s.events.Publish(event.NewProductsChangedEvent(s.Products()))
}

// Products returns a copy of the catalog.
func (s *Store) Products() []model.Product {
	return slices.Clone(s.products)
}

// Product looks up a catalog product by id.
func (s *Store) Product(id string) (model.Product, bool) {
	i := slices.IndexFunc(s.products, func(p model.Product) bool { return p.ID == id })
	if i < 0 {
		return model.Product{}, false
	}
	return s.products[i], true
}

// SelectProduct records the product being previewed.
func (s *Store) SelectProduct(id string) {
	s.selectedID = id
	s.events.Publish(event.NewProductPreviewEvent(id))
}

// SelectedProductID returns the id passed to the last SelectProduct.
func (s *Store) SelectedProductID() string {
	return s.selectedID
}

// AddProductToBasket puts a product in the basket. The basket is a set:
// adding a product that is already there does nothing and returns false.
func (s *Store) AddProductToBasket(product model.Product) bool {
	if s.InBasket(product.ID) {
		s.logger.Debug("product already in basket", "product_id", product.ID)
		return false
	}
	s.basket = append(s.basket, product)
	s.events.Publish(event.NewBasketAddProductEvent(product))
	return true
}

// RemoveProductFromBasket removes the product with the given id.
func (s *Store) RemoveProductFromBasket(id string) {
	s.basket = slices.DeleteFunc(s.basket, func(p model.Product) bool { return p.ID == id })
	s.events.Publish(event.NewBasketRemoveProductEvent(id))
}

// Basket returns a copy of the basket in insertion order.
func (s *Store) Basket() []model.Product {
	return slices.Clone(s.basket)
}

// BasketCount returns the number of products in the basket.
func (s *Store) BasketCount() int {
	return len(s.basket)
}

// InBasket reports whether the product is in the basket.
func (s *Store) InBasket(id string) bool {
	return slices.ContainsFunc(s.basket, func(p model.Product) bool { return p.ID == id })
}

// TotalPrice sums the basket. Unpriced products count as zero.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.basket {
		total = total.Add(p.Price.Amount())
	}
	return total
}

// ClearBasket empties the basket.
func (s *Store) ClearBasket() {
	s.basket = nil
	s.events.Publish(event.NewSignal(event.BasketClear))
}

// ClearOrder resets the draft order and its errors.
func (s *Store) ClearOrder() {
	s.order = model.Order{}
	s.formErrors = model.FormErrors{}
	s.events.Publish(event.NewSignal(event.OrderClear))
}

// Order returns the draft order.
func (s *Store) Order() model.Order {
	return s.order
}

// FormErrors returns a copy of the current error map.
func (s *Store) FormErrors() model.FormErrors {
	return s.formErrors.Clone()
}

// SetOrderField writes a draft field and validates the step it belongs to.
// It returns whether the order is valid after the write.
func (s *Store) SetOrderField(field model.OrderField, value string) bool {
	if err := s.order.Set(field, value); err != nil {
		s.logger.Warn("ignoring order field", "field", string(field), "error", err.Error())
		return false
	}
	return s.ValidateOrder(field)
}

// IsFirstFormFill reports whether the delivery step is already complete,
// i.e. both the address and a payment method are set. The presenter uses it
// to skip straight to contacts when checkout is reopened.
func (s *Store) IsFirstFormFill() bool {
	return s.order.Address != "" && s.order.PaymentMethod.Valid()
}

// ValidateOrder recomputes the error map for the step that field belongs to,
// publishes it in full and reports whether it is empty.
func (s *Store) ValidateOrder(field model.OrderField) bool {
	s.formErrors = Check(s.order, field)
	s.events.Publish(event.NewFormErrorsChangeEvent(s.formErrors))
	return s.formErrors.Empty()
}

// OrderRequest builds the POST /order body from the draft and the basket.
// It fails instead of producing a request the API would reject.
func (s *Store) OrderRequest() (model.OrderRequest, error) {
	if len(s.basket) == 0 {
		return model.OrderRequest{}, errors.NewInvariantError("build order", errors.ErrEmptyBasket)
	}

	items := make([]string, 0, len(s.basket))
	for _, p := range s.basket {
		if !p.Purchasable() {
			return model.OrderRequest{}, errors.NewInvariantError("build order", errors.ErrUnpricedItem).
				WithField(p.ID)
		}
		items = append(items, p.ID)
	}

	for _, field := range model.OrderFields() {
		if errs := Check(s.order, field); !errs.Empty() {
			return model.OrderRequest{}, errors.NewInvariantError("build order", errors.ErrIncompleteOrder).
				WithField(string(field))
		}
	}

	return model.OrderRequest{
		Email:         s.order.Email,
		Phone:         s.order.Phone,
		Address:       s.order.Address,
		PaymentMethod: s.order.PaymentMethod,
		Items:         items,
		Total:         model.NewAmount(s.TotalPrice()),
	}, nil
}
