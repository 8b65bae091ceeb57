package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// SignupRequest represents the data structure coming from the signup form.
// Phone numbers must be internationally formatted (E.164) when provided.
type SignupRequest struct {
	Email            string `json:"email" binding:"required,email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone" binding:"omitempty,e164"`
	HearingLossLevel string `json:"hearingLossLevel"`

	// Quiz results are accepted from the form but not sent to Shopify.
	AverageVolume        *float64 `json:"averageVolume"`
	WordRecognitionScore *float64 `json:"wordRecognitionScore"`
	WordsMissed          *float64 `json:"wordsMissed"`
}

// ValidationMessage turns a binding error into the message returned to the caller
func ValidationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return "Invalid JSON format"
	}

	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "Email":
			if fe.Tag() == "required" {
				return "email is required"
			}
			return "email must be a valid email address"
		case "Phone":
			return "phone must be a valid international phone number"
		}
	}

	return "Invalid request"
}
