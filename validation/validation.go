package validation

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"expedientes_app_go/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// validate is shared by every input type; validator caches struct metadata per type
var validate *validator.Validate

// strict strips every tag; user text is stored as plain text
var strict = bluemonday.StrictPolicy()

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so errors line up with request bodies
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("file_number", validateFileNumber)
}

// validateFileNumber checks the digits/4-digit-year court file number format
func validateFileNumber(fl validator.FieldLevel) bool {
	return models.IsValidFileNumber(fl.Field().String())
}

// FieldErrors maps json field names to a human readable message
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct validates v against its validate tags. It returns FieldErrors when a rule fails.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, e.g. CaseInput.owner_ids[0] -> owner_ids[0]
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be before %s", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must match the format " + fe.Param()
	case "file_number":
		return "must have the form number/year, e.g. 12345/2024"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// maxSanitizePasses bounds the unescape/sanitize loop for nested entity encodings
const maxSanitizePasses = 4

// SanitizeText strips markup from user supplied text and trims it. Entity-encoded
// markup is decoded before sanitizing so it cannot come back out as live tags.
func SanitizeText(s string) string {
	out := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(strict.Sanitize(html.UnescapeString(out)))
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}

// Sanitize strips markup in place from every string and *string field of the struct ptr points to
func Sanitize(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	sanitizeValue(v.Elem())
}

func sanitizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(SanitizeText(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			sanitizeValue(v.Elem())
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			for i := 0; i < v.Len(); i++ {
				sanitizeValue(v.Index(i))
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				sanitizeValue(v.Field(i))
			}
		}
	}
}
