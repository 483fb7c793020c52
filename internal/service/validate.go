package service

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Credential fields may not contain any whitespace.
	_ = validate.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
}

// checkAs runs validator tags on req and wraps any failure in the given
// sentinel, with the offending fields listed so the terminal layer can show
// a usable message.
func checkAs(req interface{}, sentinel error) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fields []string
	for _, fe := range err.(validator.ValidationErrors) {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	sort.Strings(fields)
	return fmt.Errorf("%w: %s", sentinel, strings.Join(fields, ", "))
}
