package orderControllers

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the custom "phone" rule used by CheckoutRequest
// to gin's binding validator. Call once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", validPhone)
	}
}

// validPhone accepts digits plus common separators, with at least 7 digits.
func validPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune("+-() .", r):
		default:
			return false
		}
	}
	return digits >= 7
}
