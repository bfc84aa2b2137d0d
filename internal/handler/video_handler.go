package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/internal/validation"
)

// VideoHandler handles the public video listing and the admin CRUD.
type VideoHandler struct {
	videoService service.VideoService
}

// NewVideoHandler creates a VideoHandler with the given service.
func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List handles GET /api/videos.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if videos == nil {
		videos = []*model.Video{}
	}
	writeJSON(w, http.StatusOK, videos)
}

// Create handles POST /api/admin/videos.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.VideoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	video, err := h.videoService.Create(r.Context(), req.Title, req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, video)
}

// Update handles PUT /api/admin/videos/{id}.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req validation.VideoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	video, err := h.videoService.Update(r.Context(), r.PathValue("id"), req.Title, req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

// Delete handles DELETE /api/admin/videos/{id}.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.videoService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Vídeo excluído com sucesso")
}
