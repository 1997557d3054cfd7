package state

import (
	"context"
	"fmt"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type BrandRepository interface {
	GetAll(ctx context.Context) ([]model.Brand, error)
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	Create(ctx context.Context, params model.CreateBrandParams) (*model.Brand, error)
	Update(ctx context.Context, id string, patch model.BrandPatch) error
	Delete(ctx context.Context, id string) error
}

// BrandStore mirrors the remote brand collection.
type BrandStore struct {
	repo BrandRepository
	coll *Collection[model.Brand]
}

func NewBrandStore(repo BrandRepository) *BrandStore {
	return &BrandStore{
		repo: repo,
		coll: NewCollection(func(b model.Brand) string { return b.ID }),
	}
}

func (s *BrandStore) Brands() []model.Brand { return s.coll.Items() }
func (s *BrandStore) Loading() bool         { return s.coll.Loading() }
func (s *BrandStore) Err() string           { return s.coll.Err() }

func (s *BrandStore) FetchAll(ctx context.Context) error {
	const op = "state.brand.FetchAll"

	s.coll.Begin()
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "fetch brands", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func([]model.Brand) []model.Brand { return items })
	return nil
}

func (s *BrandStore) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates first; validation failures are reported to the caller
// without touching the store or the mirror.
func (s *BrandStore) Create(ctx context.Context, params model.CreateBrandParams) (*model.Brand, error) {
	const op = "state.brand.Create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.coll.Begin()
	created, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.Error(ctx, "create brand", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Brand) []model.Brand {
		return append(items, *created)
	})
	return created, nil
}

// Update merges the patch into the mirrored item on success. An id that is
// not mirrored locally is left alone: the remote write went through and a
// re-fetch will surface it.
func (s *BrandStore) Update(ctx context.Context, id string, patch model.BrandPatch) error {
	const op = "state.brand.Update"

	s.coll.Begin()
	if err := s.repo.Update(ctx, id, patch); err != nil {
		logger.Error(ctx, "update brand",
			logger.String("brand_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Brand) []model.Brand {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			applyBrandPatch(&items[i], patch)
			break
		}
		return items
	})
	return nil
}

func (s *BrandStore) Delete(ctx context.Context, id string) error {
	const op = "state.brand.Delete"

	s.coll.Begin()
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "delete brand",
			logger.String("brand_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Brand) []model.Brand {
		return removeByID(items, id, func(b model.Brand) string { return b.ID })
	})
	return nil
}

func applyBrandPatch(b *model.Brand, p model.BrandPatch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.LogoURL != nil {
		b.LogoURL = *p.LogoURL
	}
	b.UpdatedAt = nowFn()
}
