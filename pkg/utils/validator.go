package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("media_type", validateMediaType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var defaultValidator = NewValidator()

// ValidateStruct handler'ların paylaştığı varsayılan validator
func ValidateStruct(s interface{}) error {
	return defaultValidator.Struct(s)
}

// Sadece resim ve video MIME tiplerini kabul et
func validateMediaType(fl validator.FieldLevel) bool {
	mimeType := fl.Field().String()
	return strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "video/")
}
