package importers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for datasets.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("published", func(fl validator.FieldLevel) bool {
			_, err := ParsePublished(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError lists every problem found in a dataset.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid dataset: %s", strings.Join(e.Problems, "; "))
}

// Validate checks field constraints and cross references: unique book ids and
// author/genre ids that resolve in the display tables.
func Validate(ds *Dataset) error {
	var problems []string

	if err := validatorInstance().Struct(ds); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	seen := make(map[string]int, len(ds.Books))
	for i, book := range ds.Books {
		if book.ID != "" {
			if first, dup := seen[book.ID]; dup {
				problems = append(problems, fmt.Sprintf("books[%d]: duplicate id %q (first at books[%d])", i, book.ID, first))
			} else {
				seen[book.ID] = i
			}
		}
		if book.Author != "" {
			if _, ok := ds.Authors[book.Author]; !ok {
				problems = append(problems, fmt.Sprintf("books[%d]: unknown author %q", i, book.Author))
			}
		}
		for _, g := range book.Genres {
			if g == "" {
				continue
			}
			if _, ok := ds.Genres[g]; !ok {
				problems = append(problems, fmt.Sprintf("books[%d]: unknown genre %q", i, g))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Dataset.")
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "url":
		return fmt.Sprintf("%s: %q is not a valid URL", field, fe.Value())
	case "published":
		return fmt.Sprintf("%s: %q is not a valid date", field, fe.Value())
	case "max":
		return fmt.Sprintf("%s: longer than %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q", field, fe.Tag())
	}
}
