package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags and reports the first
// failing field as a validation error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return httperr.Validation("invalid_request", err.Error())
	}

	fe := verrs[0]
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return httperr.Validation(field+"_required", fmt.Sprintf("%s is required.", fe.Field()))
	case "email":
		return httperr.Validation("invalid_"+field, fmt.Sprintf("%s must be a valid email address.", fe.Field()))
	default:
		return httperr.Validation("invalid_"+field, fmt.Sprintf("%s failed %q validation.", fe.Field(), fe.Tag()))
	}
}

// toSnake turns Go field names into snake case, keeping acronyms whole:
// BarberID becomes barber_id.
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			if prevLower || (prevUpper && nextLower) {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
