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

type NotificationService interface {
	FetchAll(ctx context.Context) error
	Notifications() []model.Notification
	UnreadCount() int64
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	Create(ctx context.Context, params model.CreateNotificationParams) (*model.Notification, error)
	Update(ctx context.Context, id string, patch model.NotificationPatch) error
	Delete(ctx context.Context, id string) error
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
}

type handler struct {
	svc NotificationService
}

func NewNotificationHandler(service NotificationService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/unread-count", h.unreadCount)
		r.Post("/read-all", h.markAllAsRead)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.remove)
		r.Post("/{id}/read", h.markAsRead)
	})
}

type notificationDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createNotificationRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

type patchNotificationRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Important *bool   `json:"important"`
	IsRead    *bool   `json:"isRead"`
}

type unreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.FetchAll(ctx); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, lo.Map(h.svc.Notifications(),
		func(n model.Notification, _ int) notificationDTO { return toNotificationDTO(n) }))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.svc.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusOK, toNotificationDTO(*n))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	created, err := h.svc.Create(ctx, model.CreateNotificationParams{
		Title:     req.Title,
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusCreated, toNotificationDTO(*created))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req patchNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	patch := model.NotificationPatch{
		Title:     req.Title,
		Content:   req.Content,
		Important: req.Important,
		IsRead:    req.IsRead,
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

func (h *handler) markAsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.MarkAsRead(ctx, chi.URLParam(r, "id")); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusNoContent, nil)
}

func (h *handler) markAllAsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.MarkAllAsRead(ctx); err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusNoContent, nil)
}

func (h *handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	respond.JSON(r.Context(), w, http.StatusOK,
		unreadCountResponse{UnreadCount: h.svc.UnreadCount()})
}

func toNotificationDTO(n model.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Important: n.Important,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
