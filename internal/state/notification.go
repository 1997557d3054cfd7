package state

import (
	"context"
	"fmt"
	"sync/atomic"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type NotificationRepository interface {
	GetAll(ctx context.Context) ([]model.Notification, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	Create(ctx context.Context, params model.CreateNotificationParams) (*model.Notification, error)
	Update(ctx context.Context, id string, patch model.NotificationPatch) error
	Delete(ctx context.Context, id string) error
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
}

// NotificationStore mirrors the remote notification collection and keeps a
// running unread counter: incremental on create/delete/mark, recomputed
// wholesale on fetch and update (an update may flip is_read either way).
type NotificationStore struct {
	repo   NotificationRepository
	coll   *Collection[model.Notification]
	unread atomic.Int64
}

func NewNotificationStore(repo NotificationRepository) *NotificationStore {
	return &NotificationStore{
		repo: repo,
		coll: NewCollection(func(n model.Notification) string { return n.ID }),
	}
}

func (s *NotificationStore) Notifications() []model.Notification { return s.coll.Items() }
func (s *NotificationStore) Loading() bool                       { return s.coll.Loading() }
func (s *NotificationStore) Err() string                         { return s.coll.Err() }
func (s *NotificationStore) UnreadCount() int64                  { return s.unread.Load() }

func (s *NotificationStore) FetchAll(ctx context.Context) error {
	const op = "state.notification.FetchAll"

	s.coll.Begin()
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "fetch notifications", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func([]model.Notification) []model.Notification {
		s.unread.Store(countUnread(items))
		return items
	})
	return nil
}

func (s *NotificationStore) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

// Create prepends on success: notifications display newest-first.
func (s *NotificationStore) Create(ctx context.Context, params model.CreateNotificationParams) (*model.Notification, error) {
	const op = "state.notification.Create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.coll.Begin()
	created, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.Error(ctx, "create notification", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Notification) []model.Notification {
		s.unread.Add(1)
		return append([]model.Notification{*created}, items...)
	})
	return created, nil
}

func (s *NotificationStore) Update(ctx context.Context, id string, patch model.NotificationPatch) error {
	const op = "state.notification.Update"

	s.coll.Begin()
	if err := s.repo.Update(ctx, id, patch); err != nil {
		logger.Error(ctx, "update notification",
			logger.String("notification_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Notification) []model.Notification {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			applyNotificationPatch(&items[i], patch)
			break
		}
		s.unread.Store(countUnread(items))
		return items
	})
	return nil
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	const op = "state.notification.Delete"

	s.coll.Begin()
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "delete notification",
			logger.String("notification_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Notification) []model.Notification {
		for _, n := range items {
			if n.ID == id && !n.IsRead {
				s.unread.Add(-1)
				break
			}
		}
		return removeByID(items, id, func(n model.Notification) string { return n.ID })
	})
	return nil
}

// MarkAsRead is idempotent: an already-read notification leaves both the
// store and the counter untouched.
func (s *NotificationStore) MarkAsRead(ctx context.Context, id string) error {
	const op = "state.notification.MarkAsRead"

	s.coll.Begin()
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		logger.Error(ctx, "mark notification as read",
			logger.String("notification_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Notification) []model.Notification {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if !items[i].IsRead {
				items[i].IsRead = true
				items[i].UpdatedAt = nowFn()
				s.unread.Add(-1)
			}
			break
		}
		return items
	})
	return nil
}

func (s *NotificationStore) MarkAllAsRead(ctx context.Context) error {
	const op = "state.notification.MarkAllAsRead"

	s.coll.Begin()
	if err := s.repo.MarkAllAsRead(ctx); err != nil {
		logger.Error(ctx, "mark all notifications as read", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Notification) []model.Notification {
		for i := range items {
			if !items[i].IsRead {
				items[i].IsRead = true
				items[i].UpdatedAt = nowFn()
			}
		}
		s.unread.Store(0)
		return items
	})
	return nil
}

func applyNotificationPatch(n *model.Notification, p model.NotificationPatch) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Important != nil {
		n.Important = *p.Important
	}
	if p.IsRead != nil {
		n.IsRead = *p.IsRead
	}
	n.UpdatedAt = nowFn()
}

func countUnread(items []model.Notification) int64 {
	var n int64
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
