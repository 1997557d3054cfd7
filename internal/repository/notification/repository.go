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

func NewNotificationRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) GetAll(ctx context.Context) ([]model.Notification, error) {
	const op = "repository.notification.GetAll"

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

	out := make([]model.Notification, 0)
	for cur.Next(ctx) {
		var ent NotificationEntity
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

func (r *repository) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	const op = "repository.notification.GetByID"

	var ent NotificationEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := EntityToModel(&ent)
	return &n, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateNotificationParams) (*model.Notification, error) {
	const op = "repository.notification.Create"

	ent := EntityFromParams(params, bson.NewObjectID().Hex(), time.Now())
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := EntityToModel(ent)
	return &n, nil
}

func (r *repository) Update(ctx context.Context, id string, patch model.NotificationPatch) error {
	const op = "repository.notification.Update"

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
	const op = "repository.notification.Delete"

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkAsRead flips is_read to true and refreshes updated_at. The filter
// keeps it idempotent: an already-read or absent notification matches
// nothing and the call succeeds as a no-op.
func (r *repository) MarkAsRead(ctx context.Context, id string) error {
	const op = "repository.notification.MarkAsRead"

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkAllAsRead reads the full collection and applies MarkAsRead to every
// currently-unread notification, in read order. The batch is not atomic: a
// notification created between the read and the writes is not included, and
// a mid-batch failure leaves earlier items marked with no rollback.
func (r *repository) MarkAllAsRead(ctx context.Context) error {
	const op = "repository.notification.MarkAllAsRead"

	all, err := r.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, n := range all {
		if n.IsRead {
			continue
		}
		if err := r.MarkAsRead(ctx, n.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
