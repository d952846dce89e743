package util

import (
	"database/sql/driver"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(sqlValuer, null.Int{}, null.Float{}, null.String{}, null.Bool{})

	return validate
}

// sqlValuer unwraps database/sql null wrappers so validation rules apply to
// the inner value instead of the struct.
func sqlValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		v, err := valuer.Value()
		if err == nil {
			return v
		}
	}
	return nil
}
