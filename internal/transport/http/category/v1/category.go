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

type CategoryService interface {
	FetchAll(ctx context.Context) error
	Categories() []model.Category
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error)
	Update(ctx context.Context, id string, patch model.CategoryPatch) error
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc CategoryService
}

func NewCategoryHandler(service CategoryService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})
}

type categoryDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createCategoryRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

type patchCategoryRequest struct {
	Title *string `json:"title"`
	Image *string `json:"image"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.FetchAll(ctx); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, lo.Map(h.svc.Categories(),
		func(c model.Category, _ int) categoryDTO { return toCategoryDTO(c) }))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.svc.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, toCategoryDTO(*c))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	created, err := h.svc.Create(ctx, model.CreateCategoryParams{
		Title: req.Title,
		Image: req.Image,
	})
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusCreated, toCategoryDTO(*created))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req patchCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	patch := model.CategoryPatch{Title: req.Title, Image: req.Image}
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

func toCategoryDTO(c model.Category) categoryDTO {
	return categoryDTO{
		ID:        c.ID,
		Title:     c.Title,
		Image:     c.Image,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
