package helpers

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// NewValidator builds the form validator. Decimal fields validate as
// their float value so numeric range tags apply to them.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			converted, _ := value.Float64()
			return converted
		}
		return nil
	}, decimal.Decimal{})
	return validate
}

// FormatValidationErrors flattens validator errors into a field->message
// map the form templates can render next to each input.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required.", field)
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters.", field, err.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s must be at most %s characters.", field, err.Param())
		case "gt":
			messages[field] = fmt.Sprintf("%s must be greater than %s.", field, err.Param())
		case "gte":
			messages[field] = fmt.Sprintf("%s must be %s or greater.", field, err.Param())
		case "lte":
			messages[field] = fmt.Sprintf("%s must be %s or less.", field, err.Param())
		case "eqfield":
			messages[field] = fmt.Sprintf("%s must match %s.", field, err.Param())
		default:
			messages[field] = fmt.Sprintf("%s is invalid.", field)
		}
	}
	return messages
}

// IDParam reads the numeric {id} route variable, zero when absent or
// malformed.
func IDParam(r *http.Request) uint {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func FormUint(r *http.Request, name string) *uint {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	converted := uint(value)
	return &converted
}

func FormUintSlice(r *http.Request, name string) []uint {
	values := make([]uint, 0)
	for _, raw := range r.PostForm[name] {
		value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			continue
		}
		values = append(values, uint(value))
	}
	return values
}

func FormInt(r *http.Request, name string) *int {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func FormDecimal(r *http.Request, name string) decimal.Decimal {
	raw := strings.TrimSpace(r.PostFormValue(name))
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func FormDecimalPtr(r *http.Request, name string) *decimal.Decimal {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

// FormDate parses the browser date input format, nil when empty.
func FormDate(r *http.Request, name string) *time.Time {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &value
}

func FormBool(r *http.Request, name string) bool {
	raw := strings.TrimSpace(r.PostFormValue(name))
	return raw == "true" || raw == "on" || raw == "1"
}

func QueryUint(r *http.Request, name string) *uint {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	converted := uint(value)
	return &converted
}

func QueryUintSlice(r *http.Request, name string) []uint {
	values := make([]uint, 0)
	for _, raw := range r.URL.Query()[name] {
		value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			continue
		}
		values = append(values, uint(value))
	}
	return values
}

func QueryInt(r *http.Request, name string) *int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func QueryIntValue(r *http.Request, name string) int {
	if value := QueryInt(r, name); value != nil {
		return *value
	}
	return 0
}

func QueryDecimal(r *http.Request, name string) *decimal.Decimal {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

func QueryDate(r *http.Request, name string) *time.Time {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &value
}

// RedirectWithMessage sends the browser to path carrying a status and a
// flash message as query parameters.
func RedirectWithMessage(w http.ResponseWriter, r *http.Request, path, status, message string) {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	target := fmt.Sprintf("%s%sstatus=%s&message=%s", path, separator, status, url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusSeeOther)
}
