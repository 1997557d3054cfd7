package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalogcore/internal/model"
	"catalogcore/internal/transport/http/respond"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

type Uploader interface {
	Upload(ctx context.Context, r io.Reader, folder, name, contentType string) (string, error)
}

type handler struct {
	uploader Uploader
}

func NewUploadHandler(uploader Uploader) *handler {
	return &handler{uploader: uploader}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/uploads", h.upload)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (h *handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: invalid multipart form", model.ErrValidation))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respond.Error(ctx, w, fmt.Errorf("%w: image file is required", model.ErrValidation))
		return
	}
	defer func() { _ = file.Close() }()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "media"
	}

	url, err := h.uploader.Upload(ctx, file, folder,
		header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(ctx, w, err)
		return
	}

	respond.JSON(ctx, w, http.StatusCreated, uploadResponse{URL: url})
}
