package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"teamtrack/internal/models"
)

// validateTeamRole validates that a string is a known team role
func validateTeamRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == "" || models.ValidRole(role)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("teamrole", validateTeamRole)
	}
}
