package msg

import (
	"github.com/Iron-Ham/larek/internal/model"
)

// ProductsMsg carries the result of fetching the catalog.
type ProductsMsg struct {
	Products []model.Product
	Err      error
}

// OrderResultMsg carries the result of submitting an order.
type OrderResultMsg struct {
	Request model.OrderRequest
	Result  model.OrderResult
	Err     error
}
