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
	"catalogcore/internal/transport/http/respond"
)

type BrandService interface {
	FetchAll(ctx context.Context) error
	Brands() []model.Brand
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	Create(ctx context.Context, params model.CreateBrandParams) (*model.Brand, error)
	Update(ctx context.Context, id string, patch model.BrandPatch) error
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc BrandService
}

func NewBrandHandler(service BrandService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/brands", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})
}

type brandDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type createBrandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}

type patchBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.FetchAll(ctx); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, lo.Map(h.svc.Brands(),
		func(b model.Brand, _ int) brandDTO { return toBrandDTO(b) }))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := h.svc.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, toBrandDTO(*b))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	created, err := h.svc.Create(ctx, model.CreateBrandParams{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusCreated, toBrandDTO(*created))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req patchBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	patch := model.BrandPatch{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
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

func toBrandDTO(b model.Brand) brandDTO {
	return brandDTO{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		LogoURL:     b.LogoURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
