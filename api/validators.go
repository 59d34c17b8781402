package api

import (
	"database/sql/driver"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guregu/null/v5"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected gin validator engine")
			return
		}

		v.RegisterTagNameFunc(fieldName)
		v.RegisterCustomTypeFunc(nullValue, null.String{}, null.Float{}, null.Int{}, null.Time{})
		err = v.RegisterValidation("moonrakerurl", validateMoonrakerUrl)
	})
	return err
}

// fieldName names fields after their json or form key in error messages.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// nullValue validates the wrapped value of null types. Nulls are seen as missing values.
func nullValue(field reflect.Value) any {
	valuer, ok := field.Interface().(driver.Valuer)
	if !ok {
		return nil
	}
	value, err := valuer.Value()
	if err != nil {
		return nil
	}
	return value
}

// validateMoonrakerUrl accepts http(s) urls with a host. The empty string is accepted, it removes the url.
func validateMoonrakerUrl(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func adaptFieldValidationError(fe validator.FieldError) string {
	inner := func(fe validator.FieldError) string {
		switch fe.ActualTag() {
		case "required":
			return "is required"
		case "max":
			if fe.Kind() == reflect.String {
				return fmt.Sprintf("must have at most %s characters", fe.Param())
			}
			return fmt.Sprintf("must be at most %s", fe.Param())
		case "gte":
			return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		case "moonrakerurl":
			return "must be an http or https url"
		}
		return "is invalid"
	}

	return fmt.Sprintf("field `%s` %s", fe.Field(), inner(fe))
}
