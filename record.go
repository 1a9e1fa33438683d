package dd

import (
	"fmt"
	"strconv"
	"strings"

	dderrors "github.com/KimNorgaard/go-dd/errors"
)

// record is a comma-separated line of a line-list section. Conversion
// errors are sticky: after the first failure every accessor returns the
// zero value and err holds the failure.
type record struct {
	section string
	names   []string
	fields  []string
	err     error
}

func newRecord(section, line string, names ...string) *record {
	r := &record{section: section, names: names}
	r.fields = strings.Split(line, ",")
	for i, f := range r.fields {
		r.fields[i] = strings.TrimSpace(f)
	}
	if len(r.fields) != len(names) {
		r.err = fmt.Errorf("expected %d fields, got %d", len(names), len(r.fields))
	}
	return r
}

func (r *record) readInt(i int) int {
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(r.fields[i])
	if err != nil {
		r.fail(i, "int", err)
	}
	return n
}

func (r *record) readFloat(i int) float64 {
	if r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(r.fields[i], 64)
	if err != nil {
		r.fail(i, "float", err)
	}
	return f
}

func (r *record) readBool(i int) bool {
	if r.err != nil {
		return false
	}
	b, err := strconv.ParseBool(r.fields[i])
	if err != nil {
		r.fail(i, "bool", err)
	}
	return b
}

// readEnum reads an int that must satisfy valid.
func (r *record) readEnum(i int, name string, valid func(int) bool) int {
	n := r.readInt(i)
	if r.err == nil && !valid(n) {
		r.fail(i, name, fmt.Errorf("unknown %s %d", name, n))
	}
	return n
}

func (r *record) fail(i int, expected string, err error) {
	r.err = &dderrors.FieldTypeError{
		Section:  r.section,
		Key:      r.names[i],
		Expected: expected,
		Actual:   r.fields[i],
		Err:      err,
	}
}

// joinFields renders record fields in order.
func joinFields(fields ...string) string {
	return strings.Join(fields, ",")
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
