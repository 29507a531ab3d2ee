package middleware

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern accepts Thai-style phone numbers with optional country
// prefix, spaces and dashes, e.g. "0812345678" or "081-234-5678".
var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// RegisterCustomValidators installs custom binding validators on the gin
// binding engine. Call once during startup before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", validatePhone)
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	return phonePattern.MatchString(cleaned)
}
