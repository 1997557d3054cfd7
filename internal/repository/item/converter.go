package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func EntityToModel(e *ItemEntity) model.Item {
	if e == nil {
		return model.Item{}
	}

	return model.Item{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Supplier:    e.Supplier,
		BrandID:     e.BrandID,
		Media: lo.Map(e.Media, func(m MediaEntity, _ int) model.Media {
			return model.Media{ID: m.ID, URL: m.URL, Type: m.Type, Order: m.Order}
		}),
		Variants: lo.Map(e.Variants, func(v VariantEntity, _ int) model.Variant {
			return model.Variant{
				ID:          v.ID,
				Name:        v.Name,
				ImportPrice: v.ImportPrice,
				Price:       v.Price,
				StockQty:    v.StockQty,
				CreatedAt:   v.CreatedAt,
			}
		}),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EntityFromParams builds a fresh item entity. Variants and media are
// embedded, not separately addressed by the store, so their ids are
// generated client-side.
func EntityFromParams(p model.CreateItemParams, id string, now time.Time) *ItemEntity {
	return &ItemEntity{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Supplier:    p.Supplier,
		BrandID:     p.BrandID,
		Media:       mediaFromParams(p.Media),
		Variants:    variantsFromParams(p.Variants, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func BuildPatchUpdate(p model.ItemPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Supplier != nil {
		set["supplier"] = *p.Supplier
	}
	if p.BrandID != nil {
		set["brand_id"] = *p.BrandID
	}
	if p.Media != nil {
		set["media"] = mediaFromParams(p.Media)
	}
	if p.Variants != nil {
		set["variants"] = variantsFromParams(p.Variants, now)
	}

	return bson.M{"$set": set}
}

func mediaFromParams(in []model.MediaParams) []MediaEntity {
	return lo.Map(in, func(m model.MediaParams, i int) MediaEntity {
		order := m.Order
		if order == 0 {
			order = i
		}
		return MediaEntity{
			ID:    uuid.NewString(),
			URL:   m.URL,
			Type:  model.MediaTypeImage,
			Order: order,
		}
	})
}

func variantsFromParams(in []model.VariantParams, now time.Time) []VariantEntity {
	return lo.Map(in, func(v model.VariantParams, _ int) VariantEntity {
		return VariantEntity{
			ID:          uuid.NewString(),
			Name:        v.Name,
			ImportPrice: v.ImportPrice,
			Price:       v.Price,
			StockQty:    v.StockQty,
			CreatedAt:   now,
		}
	})
}
