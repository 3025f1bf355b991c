package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/persondex/persondex/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under the JSON field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "field.tag" to the message surfaced when that
// check is the first to fail.
var fieldMessages = map[string]string{
	"personID.required":    "Person ID can't be blank",
	"personName.required":  "Person name can't be blank",
	"personName.max":       "Person name can't exceed 40 characters",
	"email.required":       "Email can't be blank",
	"email.max":            "Email can't exceed 40 characters",
	"email.email":          "Email should be in a proper format",
	"gender.required":      "Gender can't be blank",
	"gender.oneof":         "Gender should be Male, Female or Other",
	"countryID.required":   "Country can't be blank",
	"address.max":          "Address can't exceed 200 characters",
	"tin.len":              "TIN should be exactly 8 characters",
	"countryName.required": "Country name can't be blank",
	"countryName.max":      "Country name can't exceed 40 characters",
}

// validateFirst runs struct validation and surfaces only the first
// failing field as an InvalidFieldError.
func validateFirst(request any) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if errors.As(err, &failures) && len(failures) > 0 {
		first := failures[0]
		if message, ok := fieldMessages[first.Field()+"."+first.Tag()]; ok {
			return domain.InvalidFieldError{Message: message}
		}
		return domain.InvalidFieldError{Message: fmt.Sprintf("%s failed validation on %s", first.Field(), first.Tag())}
	}
	return domain.InvalidFieldError{Message: err.Error()}
}
