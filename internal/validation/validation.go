package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire field names, not the Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose the custom column types to the validator as their primitives so
	// lt/lte compare dates against now and FlexID behaves as a uint64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch val := field.Interface().(type) {
		case models.Date:
			return val.Time()
		case models.DateTime:
			return val.Time()
		case types.FlexID:
			return val.Uint64()
		}
		return nil
	}, models.Date{}, models.DateTime{}, types.FlexID(0))

	return v
}

// Struct validates an input DTO and returns a field→message map holding one
// entry per violated field, walking all violations. A nil map means valid.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errs := make(map[string]string, len(ve))
	for _, fe := range ve {
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio"
	case "email":
		return "El mail no tiene un formato válido"
	case "max":
		return fmt.Sprintf("No puede superar %s caracteres", fe.Param())
	case "gt":
		return "El valor tiene que ser positivo"
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual que %s", fe.Param())
	case "lte":
		if fe.Param() == "" {
			return "La fecha no puede ser futura"
		}
		return fmt.Sprintf("Debe ser menor o igual que %s", fe.Param())
	case "lt":
		if fe.Param() == "" {
			return "La fecha debe ser pasada"
		}
		return fmt.Sprintf("Debe ser menor que %s", fe.Param())
	case "oneof":
		return "Estado inválido"
	}
	return fmt.Sprintf("No cumple la restricción %s", fe.Tag())
}
