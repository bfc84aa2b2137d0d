package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// ContactService defines the business logic for contact message intake and
// triage.
type ContactService interface {
	// Submit stores a new contact message. The status is always forced to
	// pending; msg.ID and timestamps are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages newest first, filtered by status.
	List(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error)

	// UpdateStatus sets the status of a message. Any of the three enum values
	// is accepted; ErrInvalidStatus otherwise.
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)

	// ReplyLink builds the WhatsApp deep-link and templated reply text for a
	// message. When the message carries no phone the professional's own
	// number is used as the handoff target.
	ReplyLink(ctx context.Context, id string) (url, text string, err error)
}
