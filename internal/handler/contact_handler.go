package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/internal/validation"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitResponse is the JSON response for a stored submission.
type submitResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req validation.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Message: "Mensagem enviada com sucesso!",
		ID:      msg.ID,
	})
}

// List handles GET /api/admin/messages.
// Supports the query param status (all/pending/read/replied).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := model.ParseStatusFilter(r.URL.Query().Get("status"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Dados inválidos",
			Errors:  map[string]string{"status": "deve ser um de: all pending read replied"},
		})
		return
	}

	messages, err := h.contactService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// UpdateStatus handles PATCH /api/admin/messages/{id}.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req validation.StatusInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	msg, err := h.contactService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// replyLinkResponse carries the WhatsApp deep-link and the templated text.
type replyLinkResponse struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ReplyLink handles GET /api/admin/messages/{id}/reply-link.
func (h *ContactHandler) ReplyLink(w http.ResponseWriter, r *http.Request) {
	url, text, err := h.contactService.ReplyLink(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, replyLinkResponse{URL: url, Text: text})
}
