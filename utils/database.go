package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the "db" tags of the struct fields, optionally prefixed with a table alias.
func ColumnList[T any](prefixes ...string) []string {
	var prefix string
	if len(prefixes) > 0 {
		prefix = prefixes[0]
	}

	var t T
	typ := reflect.TypeOf(t)
	columns := make([]string, 0, typ.NumField())
	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		if prefix != "" {
			tag = fmt.Sprintf("%s.%s", prefix, tag)
		}
		columns = append(columns, tag)
	}
	return columns
}
