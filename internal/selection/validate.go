package selection

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/go-playground/validator/v10"
)

// validate is shared: a validator.Validate caches struct metadata and
// is safe for concurrent use once its custom tags are registered.
var validate = newValidator()

// newValidator registers one tag per option group (e.g. `validate:"scope"`)
// that accepts exactly the ids in that group's catalog.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	for _, g := range catalog.Groups() {
		group := g
		err := v.RegisterValidation(string(group), func(fl validator.FieldLevel) bool {
			_, ok := catalog.Lookup(group, fl.Field().String())
			return ok
		})
		if err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", group, err))
		}
	}
	return v
}

// ValidationError lists every field of a Selection that names an id
// outside its catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid selection: " + strings.Join(e.Problems, "; ")
}

// Validate checks every chosen id against its catalog. The engine does
// not call this: it treats unknown ids as zero votes. Callers that take
// input from users validate before evaluating.
func (s Selection) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating selection: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		g := catalog.Group(fe.Tag())
		problems = append(problems, fmt.Sprintf("%s: unknown %s %q (allowed: %s)",
			fe.Field(), g, fe.Value(), strings.Join(catalog.IDs(g), ", ")))
	}
	return &ValidationError{Problems: problems}
}
