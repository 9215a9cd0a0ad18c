// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// dimensionCodeRegex accepts lowercase slug-style codes like "aroma" or "after_taste".
var dimensionCodeRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,49}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("link_purpose", validateLinkPurpose)
		_ = v.RegisterValidation("dimension_code", validateDimensionCode)
	}
}

func validateLinkPurpose(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "rating_page", "result_page", "admin_panel":
		return true
	}
	return false
}

func validateDimensionCode(fl validator.FieldLevel) bool {
	return dimensionCodeRegex.MatchString(fl.Field().String())
}
