// Package view computes presentation-only fields from the mirrored
// collections: aggregate stock, resolved brand names, localized price
// labels. Nothing here is ever written back to the store.
package view

import (
	"github.com/samber/lo"

	"catalogcore/internal/model"
)

// NoBrandPlaceholder is shown when an item's brand reference does not
// resolve (stale id or deleted brand).
const NoBrandPlaceholder = "no brand"

// TotalStock sums stock quantities across an item's variants. A violated
// non-empty-variant invariant yields 0 instead of failing.
func TotalStock(it model.Item) int64 {
	return lo.SumBy(it.Variants, func(v model.Variant) int64 { return v.StockQty })
}

// BrandIndex resolves brand references in O(1) per lookup.
type BrandIndex map[string]string

func NewBrandIndex(brands []model.Brand) BrandIndex {
	ix := make(BrandIndex, len(brands))
	for _, b := range brands {
		ix[b.ID] = b.Name
	}
	return ix
}

func (ix BrandIndex) ResolveName(brandID string) string {
	if name, ok := ix[brandID]; ok {
		return name
	}
	return NoBrandPlaceholder
}

// ItemView decorates an inventory item with its derived fields.
type ItemView struct {
	model.Item
	TotalStock int64
	BrandName  string
	// PriceLabel is the first variant's selling price formatted for
	// display; empty when the item has no variants.
	PriceLabel string
	Variants   []VariantView
}

type VariantView struct {
	model.Variant
	PriceLabel       string
	ImportPriceLabel string
}

// Compose builds the display records for a collection of items against the
// current brand mirror.
func Compose(items []model.Item, brands []model.Brand, pf *PriceFormatter) []ItemView {
	ix := NewBrandIndex(brands)
	return lo.Map(items, func(it model.Item, _ int) ItemView {
		return ComposeOne(it, ix, pf)
	})
}

func ComposeOne(it model.Item, ix BrandIndex, pf *PriceFormatter) ItemView {
	out := ItemView{
		Item:       it,
		TotalStock: TotalStock(it),
		BrandName:  ix.ResolveName(it.BrandID),
		Variants: lo.Map(it.Variants, func(v model.Variant, _ int) VariantView {
			return VariantView{
				Variant:          v,
				PriceLabel:       pf.Format(v.Price),
				ImportPriceLabel: pf.Format(v.ImportPrice),
			}
		}),
	}
	if len(out.Variants) > 0 {
		out.PriceLabel = out.Variants[0].PriceLabel
	}
	return out
}
