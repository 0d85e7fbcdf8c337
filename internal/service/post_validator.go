package service

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"lostfound/internal/errors"
	"lostfound/internal/model"
)

// CreatePostInput carries the preprocessed fields of a creation request.
// Optional fields use the empty string for "absent".
type CreatePostInput struct {
	Type         string   `validate:"required,oneof=lost found"`
	Title        string   `validate:"required,min=3,max=100"`
	Description  string   `validate:"omitempty,max=500"`
	ImageURLs    []string `validate:"max=5,dive,url"`
	ContactEmail string   `validate:"omitempty,email"`
	ContactPhone string   `validate:"omitempty,min=10,max=15,phone_chars"`
	Secret       string   `validate:"required,min=4,max=50"`
}

var phoneCharsRegex = regexp.MustCompile(`^[0-9\s()+-]+$`)

// validationMessages maps field+tag to the message shown to the user.
var validationMessages = map[string]string{
	"Type.required":            "Type must be lost or found",
	"Type.oneof":               "Type must be lost or found",
	"Title.required":           "Title must be at least 3 characters",
	"Title.min":                "Title must be at least 3 characters",
	"Title.max":                "Title must be less than 100 characters",
	"Description.max":          "Description must be less than 500 characters",
	"ImageURLs.max":            "Maximum 5 images allowed",
	"ImageURLs.url":            "Image URL is invalid",
	"ContactEmail.email":       "Invalid email address",
	"ContactPhone.min":         "Phone number must be at least 10 digits",
	"ContactPhone.max":         "Phone number is too long",
	"ContactPhone.phone_chars": "Phone number can only contain digits, spaces, +, -, and ()",
	"Secret.required":          "Secret password is required",
	"Secret.min":               "Secret must be at least 4 characters",
	"Secret.max":               "Secret must be less than 50 characters",
}

// PostValidator enforces creation-time field constraints before a post
// reaches the store.
type PostValidator struct {
	validate *validator.Validate
}

// NewPostValidator creates a validator with the phone charset rule registered.
func NewPostValidator() *PostValidator {
	v := validator.New()
	_ = v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return phoneCharsRegex.MatchString(fl.Field().String())
	})
	return &PostValidator{validate: v}
}

// Normalize trims every string field and coerces empty optional fields to
// absent. Applied before Validate so whitespace-only input never passes a
// required check.
func (v *PostValidator) Normalize(in CreatePostInput) CreatePostInput {
	in.Type = strings.TrimSpace(in.Type)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.Secret = strings.TrimSpace(in.Secret)
	return in
}

// Validate checks the normalized input and reports the first failed rule as a
// 400 with a field-specific message.
func (v *PostValidator) Validate(in CreatePostInput) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return errors.NewHTTPError(http.StatusBadRequest, "invalid post data", "VALIDATION_ERROR")
	}
	first := validationErrs[0]
	field := first.Field()
	// dive errors report the element, e.g. "ImageURLs[2]"
	if i := strings.Index(field, "["); i >= 0 {
		field = field[:i]
	}
	msg, ok := validationMessages[field+"."+first.Tag()]
	if !ok {
		msg = "invalid post data"
	}
	return errors.NewHTTPError(http.StatusBadRequest, msg, "VALIDATION_ERROR")
}

// ToPost builds the Post record from a validated input.
func (in CreatePostInput) ToPost() *model.Post {
	urls := in.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return &model.Post{
		Type:         model.PostType(in.Type),
		Title:        in.Title,
		Description:  in.Description,
		ImageURLs:    urls,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Secret:       in.Secret,
		IsResolved:   false,
	}
}
