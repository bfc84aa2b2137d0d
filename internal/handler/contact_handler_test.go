package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc       func(ctx context.Context, msg *model.ContactMessage) error
	listFunc         func(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id, status string) (*model.ContactMessage, error)
	replyLinkFunc    func(ctx context.Context, id string) (string, string, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) ReplyLink(ctx context.Context, id string) (string, string, error) {
	if m.replyLinkFunc != nil {
		return m.replyLinkFunc(ctx, id)
	}
	return "", "", repository.ErrNotFound
}

const validSubmitBody = `{
	"name": "Ana Silva",
	"email": "ana@example.com",
	"phone": "5599912345678",
	"subject": "Agendar uma sessão",
	"message": "Gostaria de saber mais sobre o acompanhamento.",
	"consent": true
}`

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactMessage
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			msg.ID = "msg-1"
			captured = msg
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validSubmitBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a ContactMessage, got nil")
	}
	if captured.Email != "ana@example.com" {
		t.Errorf("expected email=ana@example.com, got %q", captured.Email)
	}

	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Mensagem enviada com sucesso!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.ID != "msg-1" {
		t.Errorf("expected the stored id in the response, got %q", resp.ID)
	}
}

func TestContactHandler_Submit_ConsentRequired(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			t.Error("service must not be called without consent")
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := strings.Replace(validSubmitBody, `"consent": true`, `"consent": false`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Message != "Dados inválidos" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Errors["consent"] == "" {
		t.Errorf("expected a consent field error, got %v", resp.Errors)
	}
}

func TestContactHandler_Submit_MessageTooShort(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	body := strings.Replace(validSubmitBody, "Gostaria de saber mais sobre o acompanhamento.", "Oi", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a message under 10 chars, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db connection lost")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validSubmitBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on service error, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["message"] != "Erro interno do servidor" {
		t.Errorf("expected the opaque server error message, got %q", resp["message"])
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/messages tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_ForwardsStatusFilter(t *testing.T) {
	var captured model.StatusFilter
	mock := &mockContactService{
		listFunc: func(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
			captured = filter
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?status=pending", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured != model.FilterPending {
		t.Errorf("expected pending filter forwarded to service, got %q", captured)
	}
}

func TestContactHandler_List_DefaultsToAll(t *testing.T) {
	var captured model.StatusFilter
	mock := &mockContactService{
		listFunc: func(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
			captured = filter
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if captured != model.FilterAll {
		t.Errorf("expected missing status to mean all, got %q", captured)
	}
}

func TestContactHandler_List_RejectsUnknownStatus(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
			t.Error("service must not be called for an unknown status filter")
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?status=archived", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown status filter, got %d", rec.Code)
	}
}

func TestContactHandler_List_EmptyReturnsArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [] for an empty inbox, got %s", got)
	}
}

func TestContactHandler_List_Success(t *testing.T) {
	now := time.Now()
	mock := &mockContactService{
		listFunc: func(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
			return []*model.ContactMessage{
				{ID: "2", Name: "Bia", Email: "b@x.com", Subject: "Dúvida", Message: "Olá", Status: model.StatusPending, CreatedAt: now},
				{ID: "1", Name: "Ana", Email: "a@x.com", Subject: "Sessão", Message: "Oi", Status: model.StatusRead, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp []*model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp))
	}
	if resp[0].ID != "2" {
		t.Errorf("expected newest first, got %q first", resp[0].ID)
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/admin/messages/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_UpdateStatus_Success(t *testing.T) {
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) (*model.ContactMessage, error) {
			return &model.ContactMessage{ID: id, Status: status}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/messages/msg-1", strings.NewReader(`{"status":"read"}`))
	req.SetPathValue("id", "msg-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "msg-1" || resp.Status != model.StatusRead {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestContactHandler_UpdateStatus_RejectsUnknownValue(t *testing.T) {
	mock := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id, status string) (*model.ContactMessage, error) {
			t.Error("service must not be called for an invalid status")
			return nil, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/messages/msg-1", strings.NewReader(`{"status":"archived"}`))
	req.SetPathValue("id", "msg-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown status, got %d", rec.Code)
	}
}

func TestContactHandler_UpdateStatus_NotFound(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/messages/missing", strings.NewReader(`{"status":"read"}`))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["message"] != "Não encontrado" {
		t.Errorf("unexpected message: %q", resp["message"])
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/messages/{id}/reply-link tests
// ---------------------------------------------------------------------------

func TestContactHandler_ReplyLink_Success(t *testing.T) {
	mock := &mockContactService{
		replyLinkFunc: func(ctx context.Context, id string) (string, string, error) {
			return "https://wa.me/5599912345678?text=Ol%C3%A1", "Olá Ana!", nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages/msg-1/reply-link", nil)
	req.SetPathValue("id", "msg-1")
	rec := httptest.NewRecorder()
	h.ReplyLink(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		URL  string `json:"url"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "https://wa.me/") {
		t.Errorf("expected a wa.me link, got %q", resp.URL)
	}
	if resp.Text == "" {
		t.Error("expected a non-empty reply text")
	}
}

func TestContactHandler_ReplyLink_NotFound(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages/missing/reply-link", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.ReplyLink(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
