package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewBrandRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) GetAll(ctx context.Context) ([]model.Brand, error) {
	const op = "repository.brand.GetAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Brand, 0)
	for cur.Next(ctx) {
		var ent BrandEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	const op = "repository.brand.GetByID"

	var ent BrandEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := EntityToModel(&ent)
	return &b, nil
}

// Create writes the brand under a store-generated key with both timestamps
// set to the request time and returns the stored record.
func (r *repository) Create(ctx context.Context, params model.CreateBrandParams) (*model.Brand, error) {
	const op = "repository.brand.Create"

	ent := EntityFromParams(params, bson.NewObjectID().Hex(), time.Now())
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := EntityToModel(ent)
	return &b, nil
}

// Update merges the provided fields into the stored record and refreshes
// updated_at. An absent id fails with model.ErrNotFound.
func (r *repository) Update(ctx context.Context, id string, patch model.BrandPatch) error {
	const op = "repository.brand.Update"

	res, err := r.coll.UpdateByID(ctx, id, BuildPatchUpdate(patch, time.Now()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Delete removes the key outright; deleting an absent id is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.brand.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
