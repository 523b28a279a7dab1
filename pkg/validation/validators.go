package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Structural check only: something@something.something, unanchored
	looseEmailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// New returns a validator with the custom rules registered and
// field names reported by their json tag.
func New() (*validator.Validate, error) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"trimmed_required": TrimmedRequired,
		"loose_email":      LooseEmail,
		"trimmed_min":      TrimmedMin,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// TrimmedRequired fails when the value is empty after trimming whitespace
func TrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// LooseEmail checks for non-whitespace around an "@" and a following "."
func LooseEmail(fl validator.FieldLevel) bool {
	return looseEmailRegex.MatchString(fl.Field().String())
}

// TrimmedMin compares the trimmed length against the tag param. Length is
// counted in UTF-16 code units, the way browsers count form input, so a
// character outside the BMP such as an emoji counts as two.
func TrimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(utf16.Encode([]rune(strings.TrimSpace(fl.Field().String())))) >= n
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
