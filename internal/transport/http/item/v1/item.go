package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
	"catalogcore/internal/transport/http/respond"
	"catalogcore/internal/view"
)

type ItemService interface {
	FetchAll(ctx context.Context) error
	Items() []model.Item
	GetByID(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, params model.CreateItemParams) (*model.Item, error)
	Update(ctx context.Context, id string, patch model.ItemPatch) error
	Delete(ctx context.Context, id string) error
}

// BrandProvider supplies the brand mirror used to resolve brand names on
// item views.
type BrandProvider interface {
	FetchAll(ctx context.Context) error
	Brands() []model.Brand
}

type handler struct {
	svc    ItemService
	brands BrandProvider
	prices *view.PriceFormatter
}

func NewItemHandler(service ItemService, brands BrandProvider, prices *view.PriceFormatter) *handler {
	return &handler{svc: service, brands: brands, prices: prices}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})
}

type variantDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ImportPrice      float64   `json:"importPrice"`
	Price            float64   `json:"price"`
	StockQty         int64     `json:"stockQty"`
	PriceLabel       string    `json:"priceLabel"`
	ImportPriceLabel string    `json:"importPriceLabel"`
	CreatedAt        time.Time `json:"createdAt"`
}

type mediaDTO struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

type itemDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Supplier    string       `json:"supplier"`
	BrandID     string       `json:"brandId"`
	BrandName   string       `json:"brandName"`
	TotalStock  int64        `json:"totalStock"`
	PriceLabel  string       `json:"priceLabel"`
	Media       []mediaDTO   `json:"media"`
	Variants    []variantDTO `json:"variants"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type variantRequest struct {
	Name        string  `json:"name"`
	ImportPrice float64 `json:"importPrice"`
	Price       float64 `json:"price"`
	StockQty    int64   `json:"stockQty"`
}

type mediaRequest struct {
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type createItemRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Supplier    string           `json:"supplier"`
	BrandID     string           `json:"brandId"`
	Media       []mediaRequest   `json:"media"`
	Variants    []variantRequest `json:"variants"`
}

type patchItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Supplier    *string          `json:"supplier"`
	BrandID     *string          `json:"brandId"`
	Media       []mediaRequest   `json:"media"`
	Variants    []variantRequest `json:"variants"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.FetchAll(ctx); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	views := view.Compose(h.svc.Items(), h.currentBrands(ctx), h.prices)
	respond.JSON(ctx, w, http.StatusOK, lo.Map(views,
		func(v view.ItemView, _ int) itemDTO { return toItemDTO(v) }))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	it, err := h.svc.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	ix := view.NewBrandIndex(h.currentBrands(ctx))
	respond.JSON(ctx, w, http.StatusOK, toItemDTO(view.ComposeOne(*it, ix, h.prices)))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	created, err := h.svc.Create(ctx, model.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Supplier:    req.Supplier,
		BrandID:     req.BrandID,
		Media:       mediaParams(req.Media),
		Variants:    variantParams(req.Variants),
	})
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	ix := view.NewBrandIndex(h.currentBrands(ctx))
	respond.JSON(ctx, w, http.StatusCreated, toItemDTO(view.ComposeOne(*created, ix, h.prices)))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req patchItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	patch := model.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Supplier:    req.Supplier,
		BrandID:     req.BrandID,
	}
	if req.Media != nil {
		patch.Media = mediaParams(req.Media)
	}
	if req.Variants != nil {
		patch.Variants = variantParams(req.Variants)
	}
	if patch.Empty() {
		respond.Error(ctx, w, fmt.Errorf("%w: empty patch", model.ErrValidation))
		return
	}

	if err := h.svc.Update(ctx, chi.URLParam(r, "id"), patch); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusNoContent, nil)
}

func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusNoContent, nil)
}

// currentBrands refreshes the brand mirror; a failed refresh falls back to
// the stale mirror so item views still render (unresolved brands display
// the placeholder).
func (h *handler) currentBrands(ctx context.Context) []model.Brand {
	if err := h.brands.FetchAll(ctx); err != nil {
		logger.Warn(ctx, "refresh brand mirror for item view", logger.ErrorF(err))
	}
	return h.brands.Brands()
}

func mediaParams(in []mediaRequest) []model.MediaParams {
	return lo.Map(in, func(m mediaRequest, _ int) model.MediaParams {
		return model.MediaParams{URL: m.URL, Order: m.Order}
	})
}

func variantParams(in []variantRequest) []model.VariantParams {
	return lo.Map(in, func(v variantRequest, _ int) model.VariantParams {
		return model.VariantParams{
			Name:        v.Name,
			ImportPrice: v.ImportPrice,
			Price:       v.Price,
			StockQty:    v.StockQty,
		}
	})
}

func toItemDTO(v view.ItemView) itemDTO {
	return itemDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Supplier:    v.Supplier,
		BrandID:     v.BrandID,
		BrandName:   v.BrandName,
		TotalStock:  v.TotalStock,
		PriceLabel:  v.PriceLabel,
		Media: lo.Map(v.Media, func(m model.Media, _ int) mediaDTO {
			return mediaDTO{ID: m.ID, URL: m.URL, Type: string(m.Type), Order: m.Order}
		}),
		Variants: lo.Map(v.Variants, func(vv view.VariantView, _ int) variantDTO {
			return variantDTO{
				ID:               vv.ID,
				Name:             vv.Name,
				ImportPrice:      vv.ImportPrice,
				Price:            vv.Price,
				StockQty:         vv.StockQty,
				PriceLabel:       vv.PriceLabel,
				ImportPriceLabel: vv.ImportPriceLabel,
				CreatedAt:        vv.CreatedAt,
			}
		}),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
