package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelLayout is the db-tagged field layout of one struct type.
type modelLayout struct {
	columns []string
	fields  []int
}

var layouts sync.Map // reflect.Type -> modelLayout

// Columns lists the db-tagged columns of a struct in field order. It keeps
// SELECT and COPY column lists in sync with the row models.
func Columns(model any) ([]string, error) {
	_, layout, err := inspect(model)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), layout.columns...), nil
}

// Values returns the db-tagged field values in the same order as Columns.
func Values(model any) ([]any, error) {
	value, layout, err := inspect(model)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(layout.fields))
	for i, idx := range layout.fields {
		out[i] = value.Field(idx).Interface()
	}
	return out, nil
}

func inspect(model any) (reflect.Value, modelLayout, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, modelLayout{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, modelLayout{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	if cached, ok := layouts.Load(typ); ok {
		return value, cached.(modelLayout), nil
	}

	var layout modelLayout
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		layout.columns = append(layout.columns, name)
		layout.fields = append(layout.fields, i)
	}
	if len(layout.columns) == 0 {
		return reflect.Value{}, modelLayout{}, fmt.Errorf("model %s has no db columns", typ)
	}

	layouts.Store(typ, layout)
	return value, layout, nil
}
