package defaults

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRegex = regexp.MustCompile(`range:(\[|\()(\S*)\,(\S*)(\]|\))`)
	oneofRegex = regexp.MustCompile(`oneof:(\{)(.*)(\})`)
	eachRegex  = regexp.MustCompile(`each:(.+)`)
)

// Validate validates each field of the value
func Validate(value any) error {
	v := reflect.Indirect(reflect.ValueOf(value))
	t := v.Type()

	// Look for an IsValid method on value. To check that this IsValid method
	// exists, we need to retrieve it with MethodByName, which returns a
	// reflect.Value. This reflect.Value, m, has a method that is called
	// IsValid as well, which tells us whether v actually represents the
	// function we're looking for. But they're two completely different IsValid
	// methods. Yes, this is confusing.
	m := reflect.ValueOf(value).MethodByName("IsValid")
	if m.IsValid() {
		e := m.Call([]reflect.Value{})
		err, ok := e[0].Interface().(error)
		if ok && err != nil {
			return err
		}
	}

	// For non-struct values, we cannot do much, as there's no associated tags
	// to lookup to decide how to validate, so we have to assume they're valid.
	if t.Kind() != reflect.Struct {
		return nil
	}

	// For struct values, iterate through the fields and use the type of field
	// along with its validate tags to decide next steps
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Type().Kind() {
		case reflect.Struct:
			dv := field.Interface()
			if err := Validate(dv); err != nil {
				return err
			}
		case reflect.Slice, reflect.Map:
			dv := reflect.ValueOf(field.Interface())
			if tag, ok := t.Field(i).Tag.Lookup("validate"); ok {
				if err := validate(tag, t.Field(i).Name, v, v.Field(i)); err != nil {
					return err
				}
			}
			for j := 0; j < dv.Len(); j++ {
				if err := Validate(dv.Index(j).Interface()); err != nil {
					return err
				}
			}
		case reflect.Bool, reflect.Int, reflect.Int64, reflect.Float64, reflect.String:
			tag, ok := t.Field(i).Tag.Lookup("validate")
			if !ok {
				continue
			}
			if err := validate(tag, t.Field(i).Name, v, v.Field(i)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unimplemented struct field type: %s", t.Field(i).Name)
		}
	}
	return nil
}

func validate(validation, fieldName string, p, v reflect.Value) error {
	switch validation {
	case "url":
		s := v.String()
		_, err := url.ParseRequestURI(s)
		if err != nil {
			return err
		}
	case "notempty":
		switch v.Type().Kind() {
		case reflect.String:
			s := v.String()
			if s == "" {
				return fmt.Errorf("%s is empty", fieldName)
			}
		case reflect.Slice, reflect.Map:
			if v.Len() == 0 {
				return fmt.Errorf("%v is empty", fieldName)
			}
		}
	case "file":
		s := v.String()
		if _, err := os.Stat(s); os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", fieldName, err)
		}
	default:
		if strings.HasPrefix(validation, "range") {
			if !rangeRegex.MatchString(validation) {
				return fmt.Errorf("invalid range declaration %q", validation)
			}
			matches := rangeRegex.FindStringSubmatch(validation)
			if err := validateFromRange(v, matches[2], matches[3], matches[1], matches[4]); err != nil {
				return fmt.Errorf("%s is not in the range of %s: %w", fieldName, validation, err)
			}
		} else if strings.HasPrefix(validation, "oneof") {
			if !oneofRegex.MatchString(validation) {
				return errors.New("invalid oneof declaration")
			}
			valids := oneofRegex.FindStringSubmatch(validation)[2]
			if err := validateFromOneofValues(v, strings.Split(valids, ",")); err != nil {
				return fmt.Errorf("%s is not valid: %w", fieldName, err)
			}
		} else if strings.HasPrefix(validation, "each") {
			if !eachRegex.MatchString(validation) {
				return fmt.Errorf("invalid each declaration")
			}
			eachValidation := eachRegex.FindStringSubmatch(validation)[1]
			kind := v.Kind()
			if kind != reflect.Array && kind != reflect.Slice {
				return fmt.Errorf("validation 'each' can only be applied to slices or arrays, but the type of this value is %s", kind.String())
			}
			for i := 0; i < v.Len(); i++ {
				if err := validate(eachValidation, "", p, v.Index(i)); err != nil {
					return err
				}
			}
		} else {
			return fmt.Errorf("validation type %q unknown", validation)
		}
	}
	return nil
}

func validateFromRange(value reflect.Value, mins, maxs, minInterval, maxInterval string) error {
	var min, max, val float64
	var err error
	switch value.Type().Kind() {
	case reflect.Int, reflect.Int64:
		if mins != "" {
			min, err = strconv.ParseFloat(mins, 64)
		}
		if maxs != "" {
			max, err = strconv.ParseFloat(maxs, 64)
		}
		val = float64(value.Int())
	case reflect.Float64:
		if mins != "" {
			min, err = strconv.ParseFloat(mins, 64)
		}
		if maxs != "" {
			max, err = strconv.ParseFloat(maxs, 64)
		}
		val = value.Float()
	default:
		return errors.New("could not validate this value within a range")
	}
	if err != nil {
		return err
	}

	if mins != "" {
		if minInterval == "(" {
			if min >= val {
				return errors.New("value is lesser or equal")
			}
		} else {
			if min > val {
				return errors.New("value is lesser")
			}
		}
	}

	if maxs != "" {
		if maxInterval == ")" {
			if max <= val {
				return errors.New("value is greater or equal")
			}
		} else {
			if max < val {
				return errors.New("value is greater")
			}
		}
	}
	return nil
}

func validateFromOneofValues(value reflect.Value, values []string) error {
	valids := make([]string, len(values))
	for i, s := range values {
		valids[i] = strings.TrimSpace(s)
	}
	switch value.Kind() {
	case reflect.String:
		s := value.String()
		for _, str := range valids {
			if s == str {
				return nil
			}
		}
	case reflect.Int, reflect.Int64:
		d := value.Int()
		for _, str := range valids {
			n, err := strconv.Atoi(str)
			if err != nil {
				return err
			}
			if d == int64(n) {
				return nil
			}
		}
	default:
		return errors.New("unsupported field type for oneof validation")
	}
	return fmt.Errorf("value is not one of valid values: %q", valids)
}
