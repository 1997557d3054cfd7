package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type MediaType string

const MediaTypeImage MediaType = "image"

// Item is a catalog inventory item. It exclusively owns its variants and
// media; BrandID is a non-owning reference resolved against the brand
// collection and is not enforced by the store.
type Item struct {
	// Store-assigned key of the item.
	ID string
	// Human-readable item name.
	Name string
	// Detailed description of the item.
	Description string
	// Supplier the item is sourced from.
	Supplier string
	// Reference into the brand collection; may be stale or empty.
	BrandID string
	// Ordered display media.
	Media []Media
	// Purchasable variants; at least one is required.
	Variants []Variant
	// Timestamp when the item was created.
	CreatedAt time.Time
	// Timestamp when the item was last updated.
	UpdatedAt time.Time
}

// Variant is a purchasable SKU-like sub-record of an item.
type Variant struct {
	ID string
	// Variant name, e.g. a size or volume option.
	Name string
	// Purchase cost per unit.
	ImportPrice float64
	// Selling price per unit.
	Price float64
	// Units currently in stock.
	StockQty int64
	// Timestamp when the variant was created.
	CreatedAt time.Time
}

// Media is one display asset of an item.
type Media struct {
	ID string
	// Publicly resolvable asset URL.
	URL string
	// Asset kind; only images are supported.
	Type MediaType
	// Position in the display sequence.
	Order int
}

type VariantParams struct {
	Name        string
	ImportPrice float64
	Price       float64
	StockQty    int64
}

type MediaParams struct {
	URL   string
	Order int
}

type CreateItemParams struct {
	Name        string
	Description string
	Supplier    string
	BrandID     string
	Media       []MediaParams
	Variants    []VariantParams
}

func (p CreateItemParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("item name is required"))
	}
	if len(p.Variants) == 0 {
		errs = append(errs, errors.New("item requires at least one variant"))
	}
	for i, v := range p.Variants {
		errs = append(errs, v.validate(i)...)
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrValidation}, errs...)...)
	}
	return nil
}

func (v VariantParams) validate(i int) []error {
	var errs []error
	if strings.TrimSpace(v.Name) == "" {
		errs = append(errs, fmt.Errorf("variant %d: name is required", i))
	}
	if v.ImportPrice < 0 {
		errs = append(errs, fmt.Errorf("variant %d: import price must be non-negative", i))
	}
	if v.Price < 0 {
		errs = append(errs, fmt.Errorf("variant %d: price must be non-negative", i))
	}
	if v.StockQty < 0 {
		errs = append(errs, fmt.Errorf("variant %d: stock quantity must be non-negative", i))
	}
	return errs
}

// ItemPatch is a partial-field update. Nil scalar fields are left untouched;
// a nil Media or Variants slice means "unchanged" while a non-nil one
// replaces the owned list wholesale.
type ItemPatch struct {
	Name        *string
	Description *string
	Supplier    *string
	BrandID     *string
	Media       []MediaParams
	Variants    []VariantParams
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Supplier == nil &&
		p.BrandID == nil && p.Media == nil && p.Variants == nil
}

// Validate rejects a variant replacement that would leave the item without
// a valid variant.
func (p ItemPatch) Validate() error {
	var errs []error
	if p.Variants != nil && len(p.Variants) == 0 {
		errs = append(errs, errors.New("item requires at least one variant"))
	}
	for i, v := range p.Variants {
		errs = append(errs, v.validate(i)...)
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrValidation}, errs...)...)
	}
	return nil
}
