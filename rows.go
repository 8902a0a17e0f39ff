package grid

import (
	"reflect"

	"github.com/olekukonko/errors"
)

// Row is one keyed record of the dataset.
type Row map[string]any

// Value returns the raw value stored under field.
func (r Row) Value(field string) any { return r[field] }

// RowsFromStructs converts a slice (or pointer to a slice) of structs or
// struct pointers into Rows keyed by exported field name.
func RowsFromStructs(data any) ([]Row, error) {
	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil, errors.Newf("RowsFromStructs expects a slice, got %T", data)
	}
	rows := make([]Row, rv.Len())
	for i := range rows {
		item := derefValue(rv.Index(i))
		if item.Kind() != reflect.Struct {
			return nil, errors.Newf("element %d is %s, not a struct", i, item.Kind())
		}
		t := item.Type()
		row := make(Row, t.NumField())
		for f := 0; f < t.NumField(); f++ {
			sf := t.Field(f)
			if !sf.IsExported() {
				continue
			}
			row[sf.Name] = item.Field(f).Interface()
		}
		rows[i] = row
	}
	return rows, nil
}

func derefValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// renderedValue applies the column's renderer to the raw value.
func renderedValue(row Row, rowIndex int, col *Column) any {
	raw := row.Value(col.Field)
	if col.ValueRenderer == nil {
		return raw
	}
	return col.ValueRenderer(CellContext{Row: row, RowIndex: rowIndex, Value: raw, Column: col})
}

// isPrimitive reports whether v can go to the clipboard as-is.
func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
