package server

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	postcodePattern = regexp.MustCompile(`(?i)^[a-z]{1,2}\d[a-z\d]?\s*\d[a-z]{2}$`)
	colourPattern   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// reservedSlugs collide with site routes.
var reservedSlugs = []string{
	"api",
	"dashboard",
	"admin",
	"sign-in",
	"sign-out",
	"sign-up",
	"account",
	"settings",
	"create",
	"manage",
	"edit",
	"search",
}

func IsReservedSlug(slug string) bool {
	return slices.Contains(reservedSlugs, strings.ToLower(slug))
}

// NewValidator returns a validator that knows the slug, postcode, colour and onedecimal tags and
// reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("slug", matches(slugPattern))
	_ = validate.RegisterValidation("postcode", matches(postcodePattern))
	_ = validate.RegisterValidation("colour", matches(colourPattern))
	_ = validate.RegisterValidation("onedecimal", func(field validator.FieldLevel) bool {
		scaled := field.Field().Float() * 10 //nolint:mnd // one decimal place

		return math.Abs(scaled-math.Round(scaled)) < 1e-6
	})

	return validate
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(field validator.FieldLevel) bool {
		return pattern.MatchString(field.Field().String())
	}
}

// validateRequest returns ErrInvalidPostcode for a bad postcode and ErrInvalidInput naming the
// failed fields otherwise.
func validateRequest(validate *validator.Validate, request any) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(validationErrors))

	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "postcode" {
			return fmt.Errorf("%w: %v", ErrInvalidPostcode, fieldErr.Value())
		}

		fields = append(fields, fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}
