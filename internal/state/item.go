package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type ItemRepository interface {
	GetAll(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, params model.CreateItemParams) (*model.Item, error)
	Update(ctx context.Context, id string, patch model.ItemPatch) error
	Delete(ctx context.Context, id string) error
}

// ItemStore mirrors the remote inventory collection.
type ItemStore struct {
	repo ItemRepository
	coll *Collection[model.Item]
}

func NewItemStore(repo ItemRepository) *ItemStore {
	return &ItemStore{
		repo: repo,
		coll: NewCollection(func(it model.Item) string { return it.ID }),
	}
}

func (s *ItemStore) Items() []model.Item { return s.coll.Items() }
func (s *ItemStore) Loading() bool       { return s.coll.Loading() }
func (s *ItemStore) Err() string         { return s.coll.Err() }

func (s *ItemStore) FetchAll(ctx context.Context) error {
	const op = "state.item.FetchAll"

	s.coll.Begin()
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "fetch items", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func([]model.Item) []model.Item { return items })
	return nil
}

func (s *ItemStore) GetByID(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create rejects an item without a valid variant list before any remote
// call.
func (s *ItemStore) Create(ctx context.Context, params model.CreateItemParams) (*model.Item, error) {
	const op = "state.item.Create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.coll.Begin()
	created, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.Error(ctx, "create item", logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Item) []model.Item {
		return append(items, *created)
	})
	return created, nil
}

func (s *ItemStore) Update(ctx context.Context, id string, patch model.ItemPatch) error {
	const op = "state.item.Update"

	if err := patch.Validate(); err != nil {
		return err
	}

	s.coll.Begin()
	if err := s.repo.Update(ctx, id, patch); err != nil {
		logger.Error(ctx, "update item",
			logger.String("item_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Item) []model.Item {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			applyItemPatch(&items[i], patch)
			break
		}
		return items
	})
	return nil
}

func (s *ItemStore) Delete(ctx context.Context, id string) error {
	const op = "state.item.Delete"

	s.coll.Begin()
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "delete item",
			logger.String("item_id", id), logger.ErrorF(err))
		s.coll.Fail(ctx, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coll.Resolve(ctx, func(items []model.Item) []model.Item {
		return removeByID(items, id, func(it model.Item) string { return it.ID })
	})
	return nil
}

func applyItemPatch(it *model.Item, p model.ItemPatch) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Supplier != nil {
		it.Supplier = *p.Supplier
	}
	if p.BrandID != nil {
		it.BrandID = *p.BrandID
	}
	now := nowFn()
	if p.Media != nil {
		it.Media = lo.Map(p.Media, func(m model.MediaParams, i int) model.Media {
			order := m.Order
			if order == 0 {
				order = i
			}
			return model.Media{
				ID:    uuid.NewString(),
				URL:   m.URL,
				Type:  model.MediaTypeImage,
				Order: order,
			}
		})
	}
	if p.Variants != nil {
		it.Variants = lo.Map(p.Variants, func(v model.VariantParams, _ int) model.Variant {
			return model.Variant{
				ID:          uuid.NewString(),
				Name:        v.Name,
				ImportPrice: v.ImportPrice,
				Price:       v.Price,
				StockQty:    v.StockQty,
				CreatedAt:   now,
			}
		})
	}
	it.UpdatedAt = now
}
