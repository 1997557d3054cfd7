package state

import (
	"context"
	"fmt"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error)
	Update(ctx context.Context, id string, patch model.CategoryPatch) error
	Delete(ctx context.Context, id string) error
}

// CategoryStore mirrors the remote category collection.
type CategoryStore struct {
	repo CategoryRepository
	coll *Collection[model.Category]
}

func NewCategoryStore(repo CategoryRepository) *CategoryStore {
	return &CategoryStore{
		repo: repo,
		coll: NewCollection(func(c model.Category) string { return c.ID }),
	}
}

func (s *CategoryStore) Categories() []model.Category { return s.coll.Items() }
func (s *CategoryStore) Loading() bool                { return s.coll.Loading() }
func (s *CategoryStore) Err() string                  { return s.coll.Err() }

func (s *CategoryStore) FetchAll(ctx context.Context) error {
	const op = "state.category.FetchAll"

	s.coll.Begin()
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "fetch categories", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func([]model.Category) []model.Category { return items })
	return nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryStore) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	const op = "state.category.Create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.coll.Begin()
	created, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.Error(ctx, "create category", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Category) []model.Category {
		return append(items, *created)
	})
	return created, nil
}

func (s *CategoryStore) Update(ctx context.Context, id string, patch model.CategoryPatch) error {
	const op = "state.category.Update"

	s.coll.Begin()
	if err := s.repo.Update(ctx, id, patch); err != nil {
		logger.Error(ctx, "update category",
			logger.String("category_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Category) []model.Category {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			applyCategoryPatch(&items[i], patch)
			break
		}
		return items
	})
	return nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	const op = "state.category.Delete"

	s.coll.Begin()
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "delete category",
			logger.String("category_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Category) []model.Category {
		return removeByID(items, id, func(c model.Category) string { return c.ID })
	})
	return nil
}

func applyCategoryPatch(c *model.Category, p model.CategoryPatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	c.UpdatedAt = nowFn()
}
