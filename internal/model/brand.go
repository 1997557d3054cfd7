package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

type Brand struct {
	// Store-assigned key of the brand.
	ID string
	// Human-readable brand name.
	Name string
	// Detailed description of the brand.
	Description string
	// Publicly resolvable logo URL.
	LogoURL string
	// Timestamp when the brand was created.
	CreatedAt time.Time
	// Timestamp when the brand was last updated.
	UpdatedAt time.Time
}

type CreateBrandParams struct {
	Name        string
	Description string
	LogoURL     string
}

func (p CreateBrandParams) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("brand name is required"))
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, errors.New("brand description is required"))
	}
	if !validURL(p.LogoURL) {
		errs = append(errs, errors.New("brand logo url must be a valid url"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrValidation}, errs...)...)
	}
	return nil
}

// BrandPatch is a partial-field update; nil fields are left untouched.
type BrandPatch struct {
	Name        *string
	Description *string
	LogoURL     *string
}

func (p BrandPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.LogoURL == nil
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
