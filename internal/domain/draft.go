package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var draftValidator = validator.New(validator.WithRequiredStructEnabled())

// PlayerDraft is the body of a create request
type PlayerDraft struct {
	Name     string `validate:"required"`
	Breed    string `validate:"required"`
	Status   string `validate:"required"`
	ImageURL string `validate:"required"`
}

// Normalized returns a copy of the draft with surrounding whitespace removed
func (d PlayerDraft) Normalized() PlayerDraft {
	return PlayerDraft{
		Name:     strings.TrimSpace(d.Name),
		Breed:    strings.TrimSpace(d.Breed),
		Status:   strings.TrimSpace(d.Status),
		ImageURL: strings.TrimSpace(d.ImageURL),
	}
}

// Validate returns an error wrapping ErrValidationFailure naming every empty field
func (d PlayerDraft) Validate() error {
	err := draftValidator.Struct(d.Normalized())
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailure, err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrValidationFailure, strings.Join(fields, ", "))
}
