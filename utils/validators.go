package utils

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("tagname", ValidateTagRule)
	}
}

func ValidateTagRule(fl validator.FieldLevel) bool {
	return ValidateTag(fl.Field().String())
}

// ValidateTag rejects blank tags. Anything else is allowed: tags are
// free-text labels.
func ValidateTag(tag string) bool {
	return strings.TrimSpace(tag) != ""
}
