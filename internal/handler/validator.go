package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	requestIDPattern = regexp.MustCompile(`^[\x21-\x7E]{1,128}$`)
)

// Custom tags for the identifiers clients choose themselves
const (
	tagAccountID = "accountid"
	tagRequestID = "requestid"
)

// Rule descriptions returned to clients
const (
	accountIDRule = "Must be 1-64 letters, digits, '-' or '_'"
	requestIDRule = "Must be 1-128 printable characters without spaces"
)

var sharedValidator = sync.OnceValue(newValidator)

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation(tagAccountID, validatePattern(accountIDPattern))
	_ = v.RegisterValidation(tagRequestID, validatePattern(requestIDPattern))

	return &Validator{validate: v}
}

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	return sharedValidator()
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar checks a single value, such as a path parameter or header, against tag
func (v *Validator) ValidateVar(value string, tag string) error {
	return v.validate.Var(value, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case tagAccountID:
			errs[field] = accountIDRule
		case tagRequestID:
			errs[field] = requestIDRule
		case "uuid":
			errs[field] = "Must be a UUID"
		case "unique":
			errs[field] = "Must not contain duplicates"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validatePattern accepts empty values so optional fields pass; pair with required when needed
func validatePattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}
