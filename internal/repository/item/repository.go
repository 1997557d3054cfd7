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

func NewItemRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) GetAll(ctx context.Context) ([]model.Item, error) {
	const op = "repository.item.GetAll"

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

	out := make([]model.Item, 0)
	for cur.Next(ctx) {
		var ent ItemEntity
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

func (r *repository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	const op = "repository.item.GetByID"

	var ent ItemEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	it := EntityToModel(&ent)
	return &it, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateItemParams) (*model.Item, error) {
	const op = "repository.item.Create"

	ent := EntityFromParams(params, bson.NewObjectID().Hex(), time.Now())
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	it := EntityToModel(ent)
	return &it, nil
}

// Update merges the non-nil patch fields; a non-nil variant or media list
// replaces the owned list wholesale. An absent id fails with
// model.ErrNotFound.
func (r *repository) Update(ctx context.Context, id string, patch model.ItemPatch) error {
	const op = "repository.item.Update"

	res, err := r.coll.UpdateByID(ctx, id, BuildPatchUpdate(patch, time.Now()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.item.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
