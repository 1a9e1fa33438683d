// Package mapper moves values between the key/value sections of a .dd
// document and the tagged fields of a Go struct.
package mapper

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/KimNorgaard/go-dd/ast"
	dderrors "github.com/KimNorgaard/go-dd/errors"
)

// Decode fills every tagged field of the struct pointed to by v from the
// key/value sections of doc. Fields are read in declaration order and
// the first missing or unconvertible value is returned as an error.
func Decode(doc *ast.Document, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dd: Decode(non-pointer %T or nil)", v)
	}
	rv = rv.Elem()

	fields, err := cachedFields(rv.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		body, err := keyValueBody(doc, f.section)
		if err != nil {
			return err
		}
		raw, ok := body.Get(f.key)
		if !ok {
			return &dderrors.MissingFieldError{Section: f.section, Key: f.key}
		}
		if err := setValue(rv.FieldByIndex(f.idx), raw); err != nil {
			return &dderrors.FieldTypeError{
				Section:  f.section,
				Key:      f.key,
				Expected: typeName(f.typ),
				Actual:   raw,
				Err:      err,
			}
		}
	}
	return nil
}

func keyValueBody(doc *ast.Document, name string) (*ast.KeyValueBody, error) {
	s := doc.Section(name)
	if s == nil {
		return nil, &dderrors.MissingSectionError{Section: name}
	}
	body, ok := s.Body.(*ast.KeyValueBody)
	if !ok {
		return nil, fmt.Errorf("dd: section [%s] is not a key/value section", name)
	}
	return body, nil
}

func setValue(rv reflect.Value, raw string) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", rv.Kind())
	}
	return nil
}

// Encode renders every tagged field of the struct v, or of the struct v
// points to, as key/value sections. Sections appear in the order their
// first field is declared.
func Encode(v any) ([]*ast.Section, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("dd: Encode(nil %T)", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dd: Encode(non-struct %T)", v)
	}

	fields, err := cachedFields(rv.Type())
	if err != nil {
		return nil, err
	}
	var sections []*ast.Section
	bodies := make(map[string]*ast.KeyValueBody)
	for _, f := range fields {
		body, ok := bodies[f.section]
		if !ok {
			body = &ast.KeyValueBody{}
			bodies[f.section] = body
			sections = append(sections, &ast.Section{Name: f.section, Body: body})
		}
		body.Set(f.key, formatValue(rv.FieldByIndex(f.idx)), 0)
	}
	return sections, nil
}

func formatValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return FormatFloat(rv.Float(), rv.Type().Bits())
	}
	return rv.String()
}
