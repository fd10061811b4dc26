package defaults

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Set sets the default values to fields
func Set(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("value should be a pointer")
	}
	return structDefaults(value)
}

// structDefaults assigns default values of a struct
func structDefaults(value any) error {
	v := reflect.Indirect(reflect.ValueOf(value))
	t := v.Type()

	if v.Kind() != reflect.Struct {
		return errors.New("value should be struct type")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Type().Kind() {
		case reflect.Struct:
			dv := field.Addr().Interface()
			err := structDefaults(dv)
			if err != nil {
				return err
			}
			field.Set(reflect.Indirect(reflect.ValueOf(dv)))
		case reflect.Slice, reflect.Map:
			// Slices and maps have no scalar default, they are filled in
			// by the decoder or left empty.
			continue
		case reflect.Bool, reflect.Int, reflect.Int64, reflect.Float64, reflect.String:
			tag, ok := t.Field(i).Tag.Lookup("default")
			if !ok {
				continue
			}
			def, err := setValue(field.Type(), tag)
			if err != nil {
				return fmt.Errorf("could not set value: %w", err)
			}
			field.Set(def)
		default:
			return fmt.Errorf("unimplemented struct field type: %s", t.Field(i).Type.Kind())
		}
	}
	return nil
}

// converts given string into reflect.Value, the value is assignable to a
// struct field.
func setValue(t reflect.Type, data string) (reflect.Value, error) {
	data = strings.TrimSpace(data)
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(data)
		if err != nil {
			return reflect.Zero(t), err
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(data)
	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(data, 10, 64)
		if err != nil {
			return reflect.Zero(t), err
		}
		v.SetInt(i)
	case reflect.Float64:
		f, err := strconv.ParseFloat(data, 64)
		if err != nil {
			return reflect.Zero(t), err
		}
		v.SetFloat(f)
	}
	return v, nil
}
