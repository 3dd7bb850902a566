package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"luctreport/models"
)

// Validator wraps go-playground/validator with the custom tags used by request bodies
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the "role" tag registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// Struct validates s and returns the first failing field, if any
func (v *Validator) Struct(s interface{}) *FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &FieldError{Message: err.Error()}
	}

	// Required failures win so that a body with several problems reports the missing fields first.
	first := verrs[0]
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			first = fe
			break
		}
	}
	return &FieldError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Param:   first.Param(),
		Message: fmt.Sprintf("%s failed on '%s'", first.Field(), first.Tag()),
	}
}

// FieldError describes a single validation failure
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}
