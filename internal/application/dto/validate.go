package dto

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como número (gte, gt, lte).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("maxdecimals", maxDecimals)
	return v
}

// maxDecimals valida la escala de un decimal.Decimal (o *decimal.Decimal): "maxdecimals=2".
// Lee el campo original del struct porque fl.Field() ya llega convertido a float64.
func maxDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	f := parent.FieldByName(fl.StructFieldName())
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	d, ok := f.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(int32(places)))
}

// Validate aplica las reglas `validate` del struct. Devuelve *domain.ValidationError con un error por campo.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), messageFor(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateOrderRequest.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return "debe tener al menos " + fe.Param() + " elementos"
		case reflect.String:
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "debe ser menor o igual a " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "maxdecimals":
		return "admite como máximo " + fe.Param() + " decimales"
	case "datetime":
		return "debe tener formato " + fe.Param()
	}
	return "no es válido (" + fe.Tag() + ")"
}
