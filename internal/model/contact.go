package model

import "time"

// Contact message statuses. A message is created as pending, becomes read when
// an administrator opens it and replied once an outbound reply was triggered.
// The update endpoint accepts any of the three values; ordering is a UI
// convention, not a constraint enforced at the persistence boundary.
const (
	StatusPending = "pending"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatus reports whether s is one of the three contact message statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusRead || s == StatusReplied
}

// ContactMessage represents a message submitted via the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusFilter is the closed set of filters accepted when listing contact
// messages.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterPending StatusFilter = StatusFilter(StatusPending)
	FilterRead    StatusFilter = StatusFilter(StatusRead)
	FilterReplied StatusFilter = StatusFilter(StatusReplied)
)

// ParseStatusFilter maps a query-string value onto the filter enum.
// An empty value means "all"; anything else unknown is rejected.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterPending, FilterRead, FilterReplied:
		return StatusFilter(s), true
	}
	return "", false
}
