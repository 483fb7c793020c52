package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"minimart/internal/apperr"
	"minimart/internal/model"
)

func init() {
	// The catalog and cart documents store prices as bare JSON numbers,
	// not strings; match that shape on marshal.
	decimal.MarshalJSONWithoutQuotes = true
}

// CategoryKeys lists the catalog files, in menu order. Each key maps to
// <key>.json inside the data directory.
var CategoryKeys = []string{"canned_food", "vegetables", "fruits"}

// CatalogRepository defines the data access contract for the per-category
// product catalog.
type CatalogRepository interface {
	Categories() []string
	Load(category string) (model.Category, error)
	// Save rewrites the whole category document, pretty-printed.
	Save(category string, doc model.Category) error
	// DecrementStock subtracts qty from the product at the 1-based
	// productIndex and persists. Fails before writing when qty exceeds the
	// available quantity, so stock can never go negative.
	DecrementStock(category string, productIndex, qty int) error
	// RestoreStock adds qty back to the named product, used when a
	// reserved cart line is removed. Categories are scanned in menu order
	// and only the first match is restored; unknown names are a no-op.
	RestoreStock(productName string, qty int) error
}

type catalogRepo struct{ dir string }

func NewCatalogRepository(dir string) CatalogRepository {
	return &catalogRepo{dir: dir}
}

func (r *catalogRepo) path(category string) string {
	return filepath.Join(r.dir, category+".json")
}

func (r *catalogRepo) Categories() []string {
	return CategoryKeys
}

func (r *catalogRepo) Load(category string) (model.Category, error) {
	raw, err := os.ReadFile(r.path(category))
	if err != nil {
		return model.Category{}, fmt.Errorf("%w: read %s: %v", apperr.ErrStorageUnavailable, r.path(category), err)
	}
	var doc model.Category
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Category{}, fmt.Errorf("%w: decode %s: %v", apperr.ErrStorageUnavailable, r.path(category), err)
	}
	return doc, nil
}

func (r *catalogRepo) Save(category string, doc model.Category) error {
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", category, err)
	}
	if err := os.WriteFile(r.path(category), raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperr.ErrStorageUnavailable, r.path(category), err)
	}
	return nil
}

func (r *catalogRepo) DecrementStock(category string, productIndex, qty int) error {
	doc, err := r.Load(category)
	if err != nil {
		return err
	}
	if productIndex < 1 || productIndex > len(doc.Products) {
		return apperr.ErrProductIndexOutOfRange
	}

	p := &doc.Products[productIndex-1]
	if qty > p.Quantity {
		return fmt.Errorf("%w: %s has %d left", apperr.ErrInsufficientStock, p.Name, p.Quantity)
	}
	p.Quantity -= qty

	return r.Save(category, doc)
}

func (r *catalogRepo) RestoreStock(productName string, qty int) error {
	for _, category := range r.Categories() {
		doc, err := r.Load(category)
		if err != nil {
			return err
		}
		for i := range doc.Products {
			if doc.Products[i].Name == productName {
				doc.Products[i].Quantity += qty
				return r.Save(category, doc)
			}
		}
	}
	return nil
}
