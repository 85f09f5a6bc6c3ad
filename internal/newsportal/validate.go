package newsportal

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugRe      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugRune = regexp.MustCompile(`[^a-z0-9]+`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		slug := fl.Field().String()
		return slugRe.MatchString(slug) && len(slug) <= 255
	})

	return v
}

// validateStruct runs the struct tags and turns failures into a ValidationError.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	result := &ValidationError{Errors: make(map[string]string, len(errs))}
	for _, fe := range errs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			result.Errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			result.Errors[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "url":
			result.Errors[field] = fmt.Sprintf("%s must be a valid URL", field)
		case "max":
			result.Errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		case "slug":
			result.Errors[field] = "slug must contain only lowercase letters, numbers and hyphens"
		case "hexcolor":
			result.Errors[field] = fmt.Sprintf("%s must be a hex color like #1e88e5", field)
		case "oneof":
			result.Errors[field] = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		default:
			result.Errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return result
}

// Slugify derives a URL slug from a title: "Hello, World!" -> "hello-world".
// Accents are dropped first, so "Notícias" becomes "noticias".
func Slugify(title string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, title)
	if err != nil {
		plain = title
	}

	slug := nonSlugRune.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(slug, "-")
}
