// Package bind junta decode JSON + validación de requests en un solo helper.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// ErrInvalidJSON se devuelve cuando el body no decodifica.
var ErrInvalidJSON = errors.New("invalid json")

// Get devuelve el validador singleton, con nombres de campo tomados
// del tag json para que los mensajes hablen el idioma de la API.
func Get() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
	})
	return v
}

// JSON decodifica el body en dst y lo valida según sus tags validate.
// El error que devuelve es apto para mostrarse tal cual con 400.
func JSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidJSON
	}

	if err := Get().Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%s is required", fe.Field())
			}
			return fmt.Errorf("%s is invalid", fe.Field())
		}
		return err
	}
	return nil
}
