package config

import (
	"fmt"
	"go/token"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/domgen/internal/errors"
)

// validate checks field-level constraints declared in struct tags. It is
// safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their domgen.json key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})
	return v
}

// Validate checks if the configuration is valid. Incompatible option pairs
// are reported as E121, out-of-range values as E122, one error per field.
func (c *Config) Validate() error {
	if c.MinifyTemplates && !c.TemplateMode {
		return errors.New("E121").
			WithDetail("minifyTemplates requires templateMode").
			WithSuggestion(`Set "templateMode": true or drop "minifyTemplates"`)
	}
	if c.S3.Bucket != "" && c.Output.Dir != "" {
		return errors.New("E121").WithDetail("output.dir and s3.bucket select different output targets")
	}

	var errs []error
	if err := validate.Struct(c); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.New("E122").Wrap(err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}
	// hostname_port rejects port 0, which asks the kernel for a free port.
	if _, _, err := net.SplitHostPort(c.Serve.Addr); err != nil {
		errs = append(errs, errors.New("E122").WithDetailf("serve.addr %q: %v", c.Serve.Addr, err))
	}
	return errors.Join(errs...)
}

// fieldError converts a validator failure into an E122 naming the option.
func fieldError(fe validator.FieldError) *errors.Error {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	var msg string
	switch fe.Tag() {
	case "gte":
		msg = fmt.Sprintf("%s must not be negative, got %v", key, fe.Value())
	case "goident":
		msg = fmt.Sprintf("%s %q is not a Go identifier", key, fe.Value())
	case "endswith":
		msg = fmt.Sprintf("%s %q must end in %s", key, fe.Value(), fe.Param())
	case "excluded_without":
		msg = fmt.Sprintf("%s requires s3.bucket", key)
	case "url":
		msg = fmt.Sprintf("%s %q is not a URL", key, fe.Value())
	default:
		msg = fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
	return errors.New("E122").WithDetail(msg)
}
