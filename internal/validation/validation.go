// Package validation declares the request payload schemas and runs them
// through go-playground/validator, converting failures into per-field error
// maps suitable for a 400 response body.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactInput is the payload for the public contact form submission.
// Consent must be literally true; status is never accepted from the submitter.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Phone   string `json:"phone" validate:"omitempty,min=10"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
	Consent bool   `json:"consent" validate:"eq=true"`
}

// CourseInput is the payload for course create/update.
type CourseInput struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
	Link        string `json:"link" validate:"required,url"`
	Image       string `json:"image" validate:"omitempty"`
}

// VideoInput is the payload for video create/update. The thumbnail is always
// derived server-side and therefore has no field here.
type VideoInput struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	URL   string `json:"url" validate:"required,url"`
}

// StatusInput is the payload for a contact message status update.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending read replied"`
}

// LoginInput is the payload for admin login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required"`
}

// Error carries the per-field validation failures for one payload.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string { return "dados inválidos" }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the payload against its schema tags. It returns nil on
// success and an *Error with one message per failing field otherwise.
func Check(payload any) *Error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Fields: map[string]string{"_": "payload inválido"}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &Error{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "min":
		return "deve ter pelo menos " + fe.Param() + " caracteres"
	case "max":
		return "deve ter no máximo " + fe.Param() + " caracteres"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "eq":
		return "deve ser aceito"
	}
	return "valor inválido"
}
