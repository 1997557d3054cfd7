package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func EntityToModel(e *BrandEntity) model.Brand {
	if e == nil {
		return model.Brand{}
	}

	return model.Brand{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		LogoURL:     e.LogoURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func EntityFromParams(p model.CreateBrandParams, id string, now time.Time) *BrandEntity {
	return &BrandEntity{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		LogoURL:     p.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BuildPatchUpdate maps the non-nil patch fields to a $set document.
// The updated_at refresh rides in the same $set.
func BuildPatchUpdate(p model.BrandPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.LogoURL != nil {
		set["logo_url"] = *p.LogoURL
	}

	return bson.M{"$set": set}
}
