package model

import (
	"errors"
	"strings"
	"time"
)

type Category struct {
	// Store-assigned key of the category.
	ID string
	// Display title of the category.
	Title string
	// Category image URL.
	Image string
	// Timestamp when the category was created.
	CreatedAt time.Time
	// Timestamp when the category was last updated.
	UpdatedAt time.Time
}

type CreateCategoryParams struct {
	Title string
	Image string
}

func (p CreateCategoryParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("category title is required"))
	}
	if strings.TrimSpace(p.Image) == "" {
		errs = append(errs, errors.New("category image is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrValidation}, errs...)...)
	}
	return nil
}

// CategoryPatch is a partial-field update; nil fields are left untouched.
type CategoryPatch struct {
	Title *string
	Image *string
}

func (p CategoryPatch) Empty() bool {
	return p.Title == nil && p.Image == nil
}
