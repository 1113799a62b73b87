// Package model defines the storefront value types shared by the store, the
// API client, the demo server and the views.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Product is a catalog item. Products are immutable once loaded.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Price       Price  `json:"price" yaml:"price"`
	Image       string `json:"image" yaml:"image"`
}

// Purchasable reports whether the product can be put in the basket.
// Unpriced products are shown in the catalog but cannot be bought.
func (p Product) Purchasable() bool {
	return p.Price.Valid
}

// Price is a nullable amount of synapses.
// It encodes to a bare JSON number, or null when unset.
type Price struct {
	decimal.NullDecimal
}

// NewPrice returns a set price of the given whole amount.
func NewPrice(amount int64) Price {
	return Price{decimal.NewNullDecimal(decimal.NewFromInt(amount))}
}

// NoPrice returns an unset price.
func NoPrice() Price {
	return Price{}
}

// ParsePrice parses a decimal string such as "750" or "19.99".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{decimal.NewNullDecimal(d)}, nil
}

// Amount returns the price, treating an unset price as zero.
func (p Price) Amount() decimal.Decimal {
	if !p.Valid {
		return decimal.Zero
	}
	return p.Decimal
}

// MarshalJSON encodes the price as a number or null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts a number, a quoted number or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.NullDecimal.UnmarshalJSON(data)
}

// UnmarshalYAML accepts a scalar number or null.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", node.Line)
	}
	if node.Tag == "!!null" || node.Value == "" || node.Value == "~" {
		*p = NoPrice()
		return nil
	}
	parsed, err := ParsePrice(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed
	return nil
}

// Amount is a non-null amount of synapses, encoded as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// MarshalJSON encodes the amount as a number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts a number or a quoted number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// ListResponse is the envelope of GET /products.
type ListResponse struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}
