package model

import (
	"errors"
	"strings"
	"time"
)

type Notification struct {
	// Store-assigned key of the notification.
	ID string
	// Short headline shown in the list.
	Title string
	// Notification body.
	Content string
	// Important notifications are pinned by the admin UI.
	Important bool
	// IsRead transitions only false -> true; marking an already-read
	// notification is a no-op.
	IsRead bool
	// Timestamp when the notification was created.
	CreatedAt time.Time
	// Timestamp when the notification was last updated.
	UpdatedAt time.Time
}

type CreateNotificationParams struct {
	Title     string
	Content   string
	Important bool
}

func (p CreateNotificationParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("notification title is required"))
	}
	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, errors.New("notification content is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrValidation}, errs...)...)
	}
	return nil
}

// NotificationPatch is a partial-field update; nil fields are left untouched.
type NotificationPatch struct {
	Title     *string
	Content   *string
	Important *bool
	IsRead    *bool
}

func (p NotificationPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Important == nil && p.IsRead == nil
}
