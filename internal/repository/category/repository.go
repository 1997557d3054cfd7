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

func NewCategoryRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) GetAll(ctx context.Context) ([]model.Category, error) {
	const op = "repository.category.GetAll"

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

	out := make([]model.Category, 0)
	for cur.Next(ctx) {
		var ent CategoryEntity
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

func (r *repository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	const op = "repository.category.GetByID"

	var ent CategoryEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := EntityToModel(&ent)
	return &c, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	const op = "repository.category.Create"

	ent := EntityFromParams(params, bson.NewObjectID().Hex(), time.Now())
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := EntityToModel(ent)
	return &c, nil
}

func (r *repository) Update(ctx context.Context, id string, patch model.CategoryPatch) error {
	const op = "repository.category.Update"

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
	const op = "repository.category.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
