package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mobile10Pattern = regexp.MustCompile(`^\d{10}$`)

// Init wires custom rules into Gin's validator. Must run before any route
// binds a request body.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report fields under their json names so validation messages match
	// the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// mobile10: exactly ten decimal digits.
	_ = v.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return mobile10Pattern.MatchString(fl.Field().String())
	})
}
