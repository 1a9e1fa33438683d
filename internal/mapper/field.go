package mapper

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// field binds a struct field to a key of a key/value section.
type field struct {
	section string
	key     string
	idx     []int
	typ     reflect.Type
}

// fieldCache caches the bound fields of a struct type, in declaration order.
var fieldCache sync.Map // map[reflect.Type][]field

// cachedFields parses the `dd:"Section,Key"` tags of a struct type.
// Untagged fields and fields tagged "-" are skipped.
func cachedFields(t reflect.Type) ([]field, error) {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field), nil
	}

	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("dd")
		if tag == "" || tag == "-" {
			continue
		}

		section, key, ok := strings.Cut(tag, ",")
		if !ok || section == "" || key == "" {
			return nil, fmt.Errorf("dd: invalid tag %q on field %s.%s", tag, t.Name(), sf.Name)
		}
		if !supported(sf.Type.Kind()) {
			return nil, fmt.Errorf("dd: unsupported type %s for field %s.%s", sf.Type, t.Name(), sf.Name)
		}
		fields = append(fields, field{section: section, key: key, idx: sf.Index, typ: sf.Type})
	}

	fieldCache.Store(t, fields)
	return fields, nil
}

func supported(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// typeName is the type named in field type errors.
func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	}
	return t.String()
}
