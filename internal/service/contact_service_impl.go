package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
	"github.com/natanielandrade/backend/pkg/whatsapp"
)

type contactServiceImpl struct {
	repo         repository.ContactRepository
	defaultPhone string
}

// NewContactService creates a ContactService backed by the given repository.
// defaultPhone is the reply target for messages submitted without a phone.
func NewContactService(repo repository.ContactRepository, defaultPhone string) ContactService {
	return &contactServiceImpl{repo: repo, defaultPhone: defaultPhone}
}

// Submit stores a new contact message, forcing status to pending regardless
// of what the caller set.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Status = model.StatusPending
	return s.repo.Save(ctx, msg)
}

func (s *contactServiceImpl) List(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, filter)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *contactServiceImpl) ReplyLink(ctx context.Context, id string) (string, string, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	phone := msg.Phone
	if phone == "" {
		phone = s.defaultPhone
	}
	text := whatsapp.ReplyText(msg.Name, msg.Subject, msg.Message)
	return whatsapp.Link(phone, text), text, nil
}
