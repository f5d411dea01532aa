package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/pkg/idgen"
)

// errInvalidBody cuerpo que no se puede decodificar como JSON.
var errInvalidBody = errors.New("cuerpo inválido")

// RequestValidator valida los DTO de entrada con las etiquetas `validate`.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator registra las reglas propias (phone9, trackingtoken) y usa los nombres JSON
// de los campos en los mensajes.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone9", func(fl validator.FieldLevel) bool {
		return entity.ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("trackingtoken", func(fl validator.FieldLevel) bool {
		return idgen.ValidTrackingToken(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Struct valida in y traduce los fallos a domain.ValidationError.
func (rv *RequestValidator) Struct(in any) error {
	err := rv.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return out
}

// ValidToken aplica la regla trackingtoken a un valor suelto (parámetro de ruta).
func (rv *RequestValidator) ValidToken(token string) bool {
	return rv.validate.Var(token, "required,trackingtoken") == nil
}

// Bind decodifica el cuerpo JSON en in y lo valida.
func (rv *RequestValidator) Bind(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return errInvalidBody
	}
	return rv.Struct(in)
}

// fieldPath quita el nombre del struct raíz: "CreateOrderRequest.customerInfo.phone" → "customerInfo.phone".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "Campo obligatorio"
	case "email":
		return "Email inválido"
	case "phone9":
		return "El teléfono debe tener 9 dígitos"
	case "trackingtoken":
		return "Token de seguimiento inválido"
	case "datetime":
		return "Fecha inválida (formato AAAA-MM-DD)"
	case "oneof":
		return "Valor no permitido, opciones: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "Debe tener al menos " + fe.Param() + " caracteres"
		}
		return "Debe ser al menos " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "Debe ser como máximo " + fe.Param()
	default:
		return "Valor inválido"
	}
}
