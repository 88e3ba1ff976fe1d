// Package bind decodes JSON request bodies and validates them with go-playground/validator
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "addressbook/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps a request body
const MaxBody = 1 << 20

// Validator is go-playground/validator with english messages keyed by json names
type Validator struct {
	v  *validator.Validate
	tr ut.Translator
}

// short overrides for the stock english translations
var messages = map[string]string{
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"notblank": "{0} must not be blank",
}

var shared = sync.OnceValue(func() *Validator {
	loc := en.New()
	tr, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = entrans.RegisterDefaultTranslations(v, tr)
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, tr,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, _ := t.T(fe.Tag(), fe.Field(), fe.Param())
				return s
			})
	}
	return &Validator{v: v, tr: tr}
})

// Default is the process validator
func Default() *Validator { return shared() }

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Struct validates s and reports the first failure as a validation error carrying its field
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if errors.As(err, &fes) && len(fes) > 0 {
		fe := fes[0]
		return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(v.tr)), fe.Field())
	}
	return perr.Wrap(err, perr.ErrorCodeUnknown, "validator misuse")
}

// JSON reads exactly one JSON value of T from the body and validates it when T is a struct
// unknown fields, trailing data, empty and oversized bodies are JSON errors
func JSON[T any](r *http.Request) (T, error) {
	var v T
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, decodeError(err)
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		var zero T
		return zero, perr.JSONErrf("body must hold a single JSON value")
	}

	if isStruct(reflect.TypeOf(v)) {
		if err := Default().Struct(v); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

func decodeError(err error) error {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return perr.JSONErrf("empty body")
	case errors.As(err, &tooBig):
		return perr.JSONErrf("body exceeds %d bytes", tooBig.Limit)
	default:
		return perr.JSONErrf("invalid JSON: %v", err)
	}
}

func isStruct(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}
