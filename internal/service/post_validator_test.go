package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lostfound/internal/errors"
)

func validInput() CreatePostInput {
	return CreatePostInput{
		Type:   "lost",
		Title:  "Blue backpack",
		Secret: "pass1234",
	}
}

func TestPostValidator_Validate(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*CreatePostInput)
		expectedMessage string
	}{
		{
			name:            "valid minimal input",
			mutate:          func(in *CreatePostInput) {},
			expectedMessage: "",
		},
		{
			name: "valid input with all fields",
			mutate: func(in *CreatePostInput) {
				in.Description = "Left on the 42 bus"
				in.ImageURLs = []string{"https://cdn.example.com/img/1.jpg"}
				in.ContactEmail = "jo@example.com"
				in.ContactPhone = "(020) 555-1234"
			},
			expectedMessage: "",
		},
		{
			name:            "missing type",
			mutate:          func(in *CreatePostInput) { in.Type = "" },
			expectedMessage: "Type must be lost or found",
		},
		{
			name:            "unknown type",
			mutate:          func(in *CreatePostInput) { in.Type = "stolen" },
			expectedMessage: "Type must be lost or found",
		},
		{
			name:            "title too short",
			mutate:          func(in *CreatePostInput) { in.Title = "ab" },
			expectedMessage: "Title must be at least 3 characters",
		},
		{
			name:            "title too long",
			mutate:          func(in *CreatePostInput) { in.Title = strings.Repeat("x", 101) },
			expectedMessage: "Title must be less than 100 characters",
		},
		{
			name:            "description too long",
			mutate:          func(in *CreatePostInput) { in.Description = strings.Repeat("x", 501) },
			expectedMessage: "Description must be less than 500 characters",
		},
		{
			name: "too many images",
			mutate: func(in *CreatePostInput) {
				in.ImageURLs = []string{
					"https://cdn.example.com/1.jpg",
					"https://cdn.example.com/2.jpg",
					"https://cdn.example.com/3.jpg",
					"https://cdn.example.com/4.jpg",
					"https://cdn.example.com/5.jpg",
					"https://cdn.example.com/6.jpg",
				}
			},
			expectedMessage: "Maximum 5 images allowed",
		},
		{
			name:            "invalid image url",
			mutate:          func(in *CreatePostInput) { in.ImageURLs = []string{"not-a-url"} },
			expectedMessage: "Image URL is invalid",
		},
		{
			name:            "invalid email",
			mutate:          func(in *CreatePostInput) { in.ContactEmail = "not-an-email" },
			expectedMessage: "Invalid email address",
		},
		{
			name:            "phone too short",
			mutate:          func(in *CreatePostInput) { in.ContactPhone = "12345" },
			expectedMessage: "Phone number must be at least 10 digits",
		},
		{
			name:            "phone too long",
			mutate:          func(in *CreatePostInput) { in.ContactPhone = "1234567890123456" },
			expectedMessage: "Phone number is too long",
		},
		{
			name:            "phone with letters",
			mutate:          func(in *CreatePostInput) { in.ContactPhone = "06-CALL-ME-NOW" },
			expectedMessage: "Phone number can only contain digits, spaces, +, -, and ()",
		},
		{
			name:            "missing secret",
			mutate:          func(in *CreatePostInput) { in.Secret = "" },
			expectedMessage: "Secret password is required",
		},
		{
			name:            "secret too short",
			mutate:          func(in *CreatePostInput) { in.Secret = "abc" },
			expectedMessage: "Secret must be at least 4 characters",
		},
		{
			name:            "secret too long",
			mutate:          func(in *CreatePostInput) { in.Secret = strings.Repeat("s", 51) },
			expectedMessage: "Secret must be less than 50 characters",
		},
	}

	v := NewPostValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(v.Normalize(in))

			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			httpErr, ok := err.(*errors.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, 400, httpErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, httpErr.Message)
			assert.Equal(t, "VALIDATION_ERROR", httpErr.Code)
		})
	}
}

// Whitespace-only optional fields are treated as absent, and a
// whitespace-only secret never satisfies the creation policy.
func TestPostValidator_Normalize(t *testing.T) {
	v := NewPostValidator()

	in := validInput()
	in.ContactEmail = "   "
	in.ContactPhone = "\t"
	in.Description = " "
	norm := v.Normalize(in)
	assert.Empty(t, norm.ContactEmail)
	assert.Empty(t, norm.ContactPhone)
	assert.Empty(t, norm.Description)
	assert.NoError(t, v.Validate(norm))

	in = validInput()
	in.Secret = "    "
	err := v.Validate(v.Normalize(in))
	assert.Error(t, err)
	assert.Equal(t, "Secret password is required", err.(*errors.HTTPError).Message)
}
