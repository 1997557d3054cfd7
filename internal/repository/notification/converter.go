package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"catalogcore/internal/model"
)

func EntityToModel(e *NotificationEntity) model.Notification {
	if e == nil {
		return model.Notification{}
	}

	return model.Notification{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Important: e.Important,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EntityFromParams builds a fresh entity; a new notification always starts
// unread.
func EntityFromParams(p model.CreateNotificationParams, id string, now time.Time) *NotificationEntity {
	return &NotificationEntity{
		ID:        id,
		Title:     p.Title,
		Content:   p.Content,
		Important: p.Important,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func BuildPatchUpdate(p model.NotificationPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.Important != nil {
		set["important"] = *p.Important
	}
	if p.IsRead != nil {
		set["is_read"] = *p.IsRead
	}

	return bson.M{"$set": set}
}
