package service

import "errors"

// ErrInvalidCredentials is returned by Login when the email is unknown or the
// password does not match. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidVideoURL is returned when no YouTube video id can be extracted
// from a submitted URL.
var ErrInvalidVideoURL = errors.New("invalid video url")

// ErrInvalidStatus is returned for a status value outside the allowed enum.
var ErrInvalidStatus = errors.New("invalid status")
