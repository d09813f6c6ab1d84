package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"womenhub/internal/apperror"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\+\-\(\)]{10,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s]+$`)
)

func ValidEmail(s string) bool { return emailPattern.MatchString(s) }
func ValidPhone(s string) bool { return phonePattern.MatchString(s) }
func ValidURL(s string) bool   { return urlPattern.MatchString(s) }

// New returns a validator with the form tags registered:
//
//	emailfmt  email address
//	phone     at least ten digits, spaces, +, -, ( or )
//	httpurl   http or https URL without whitespace
//
// Field names in errors are taken from the json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, re := range map[string]*regexp.Regexp{
		"emailfmt": emailPattern,
		"phone":    phonePattern,
		"httpurl":  urlPattern,
	} {
		if err := v.RegisterValidation(tag, matches(re)); err != nil {
			panic(fmt.Sprintf("register %s: %v", tag, err))
		}
	}

	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates form and converts the first failure into a validation
// AppError naming the field.
func Struct(v *validator.Validate, form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.ValidationFailed("", err.Error())
	}

	fe := fieldErrs[0]
	return apperror.ValidationFailed(fe.Field(), message(fe))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "emailfmt":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "httpurl":
		return fmt.Sprintf("%s must be an http(s) URL", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
