package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func EntityToModel(e *CategoryEntity) model.Category {
	if e == nil {
		return model.Category{}
	}

	return model.Category{
		ID:        e.ID,
		Title:     e.Title,
		Image:     e.Image,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func EntityFromParams(p model.CreateCategoryParams, id string, now time.Time) *CategoryEntity {
	return &CategoryEntity{
		ID:        id,
		Title:     p.Title,
		Image:     p.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func BuildPatchUpdate(p model.CategoryPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}

	return bson.M{"$set": set}
}
