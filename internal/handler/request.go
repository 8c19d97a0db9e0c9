package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/wardrobe/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared request validator. Field names in errors are
// the JSON names, and decimal fields compare as numbers.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseWeatherSeason(fl.Field().String())
			return ok
		})

		validate = v
	})
	return validate
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
// and trailing data. Type mismatches are reported per field.
func DecodeJSON(r *http.Request, dst any) error {
	const op = "request.decode"

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return domain.NewValidationError(op, typeErr.Field, "Invalid value")
		case errors.As(err, &maxErr):
			return domain.Errorf(domain.ETOOLARGE, op, "Request body too large")
		case errors.Is(err, io.EOF):
			return domain.Invalid(op, "Required request body is missing")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return domain.Invalid(op, "Unknown field: %s", field)
		default:
			return domain.WrapError(err, domain.EINVALID, op, "Malformed JSON request")
		}
	}

	if dec.More() {
		return domain.Invalid(op, "Malformed JSON request")
	}
	return nil
}

// Validate checks dst against its validate tags and returns a
// domain.ValidationError keyed by JSON field path.
func Validate(dst any) error {
	err := Validator().Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Internal(err, "request.validate", "failed to validate request")
	}

	var verr error
	for _, fe := range fieldErrs {
		verr = domain.AddFieldError(verr, fieldPath(fe), fieldMessage(fe))
	}
	return verr
}

// DecodeAndValidate decodes the JSON body into dst and validates it.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// fieldPath strips the struct type from the namespace, so a failure on
// UserRequest.address.city is keyed as address.city.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Cannot be empty"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Min length is %s", fe.Param())
		}
		return fmt.Sprintf("Min is %s", fe.Param())
	case "email":
		return "Invalid email"
	case "eqfield":
		return "The password must match"
	case "season":
		return "Invalid weather season"
	case "datetime":
		return fmt.Sprintf("Invalid date, expected format %s", "yyyy-MM-dd")
	default:
		return "Invalid value"
	}
}
