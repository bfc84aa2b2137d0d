package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/internal/validation"
)

// CourseHandler handles the public course listing and the admin CRUD.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a CourseHandler with the given service.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List handles GET /api/courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if courses == nil {
		courses = []*model.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.courseService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// Create handles POST /api/admin/courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	course := &model.Course{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Image:       req.Image,
	}
	if err := h.courseService.Create(r.Context(), course); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// Update handles PUT /api/admin/courses/{id}.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req validation.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	course := &model.Course{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Image:       req.Image,
	}
	if err := h.courseService.Update(r.Context(), course); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /api/admin/courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.courseService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Curso excluído com sucesso")
}
