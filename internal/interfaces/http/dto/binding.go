package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/laptechvn/backend/internal/domain/catalog"
)

// RegisterValidators installs the custom binding validators on gin's
// validator engine. Call once at startup before serving requests.
//
// The "spec" tag accepts any specification string, labeled or positional,
// that parses to at least one attribute.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	return v.RegisterValidation("spec", func(fl validator.FieldLevel) bool {
		return !catalog.ParseSpecification(fl.Field().String()).IsEmpty()
	})
}
