package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the product list served by the demo API.
// It is safe for concurrent use; Replace swaps the whole list at once.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
	index    map[string]int
}

// NewCatalog creates a catalog from products. Duplicate or empty ids are rejected.
func NewCatalog(products []model.Product) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(products); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the built-in demo catalog.
func DefaultCatalog() (*Catalog, error) {
	products, err := ParseCatalog(defaultCatalog, ".yaml")
	if err != nil {
		return nil, errors.Wrap(err, "built-in catalog")
	}
	return NewCatalog(products)
}

// LoadCatalogFile reads a YAML or JSON catalog file.
func LoadCatalogFile(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	products, err := ParseCatalog(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parse catalog %s", path)
	}
	return products, nil
}

// ParseCatalog decodes a product list. ext selects the format: ".json" for
// JSON, anything else for YAML. A JSON file may also hold a {total, items}
// envelope as returned by GET /products.
func ParseCatalog(data []byte, ext string) ([]model.Product, error) {
	var products []model.Product

	if strings.EqualFold(ext, ".json") {
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") {
			var list model.ListResponse
			if err := json.Unmarshal(data, &list); err != nil {
				return nil, err
			}
			return list.Items, nil
		}
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, err
		}
		return products, nil
	}

	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Replace swaps the catalog contents.
func (c *Catalog) Replace(products []model.Product) error {
	index := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return errors.NewValidationError("product id is required").WithField(fmt.Sprintf("items[%d].id", i))
		}
		if _, dup := index[p.ID]; dup {
			return errors.NewValidationError("duplicate product id").WithField("id").WithValue(p.ID)
		}
		index[p.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = slices.Clone(products)
	c.index = index
	return nil
}

// List returns a copy of all products.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products)
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return model.Product{}, errors.NewNotFoundError("product", id)
	}
	return c.products[i], nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
