package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages mirrors the per-field wording of the observed API.
var fieldMessages = map[string]string{
	"Email":    "Email is required",
	"Password": "Password is required",
	"FullName": "Full Name is required",
	"Title":    "Title is required",
	"Content":  "Content is required",
}

// BindingMessage turns a gin binding failure into the client-facing message.
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return msg
		}
		return verrs[0].Field() + " is invalid"
	}
	return "Invalid request body"
}
