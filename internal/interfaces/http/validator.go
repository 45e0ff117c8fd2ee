package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/domain"
)

// ErrInvalidBody cuerpo que no se pudo decodificar.
var ErrInvalidBody = domain.NewError(domain.ErrInvalidInput, "Invalid request body")

// Validator envuelve go-playground/validator y reporta con los nombres JSON de los campos.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate valida i; los errores salen como domain.ErrInvalidInput con un mensaje por campo.
func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return domain.NewError(domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}
	return err
}

// Bind decodifica el body de c en out y lo valida.
// Errores de dominio producidos al decodificar (categoría, estado, fecha) se devuelven tal cual.
func (val *Validator) Bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		if domain.Kind(err) != nil {
			return err
		}
		return ErrInvalidBody
	}
	return val.Validate(out)
}

// fieldError convierte un error de campo en un mensaje legible.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
