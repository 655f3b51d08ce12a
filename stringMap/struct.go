package stringMap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// FromStruct flattens the exported fields of s into strings keyed by their
// json name. Composite fields are json encoded, fields tagged `json:"-"` are
// skipped.
func FromStruct(s any) map[string]string {
	if s == nil {
		return map[string]string{}
	}
	var (
		m        = map[string]string{}
		v        = reflect.ValueOf(s)
		vF       reflect.StructField
		jsonData []byte
		key      string
	)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return m
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return m
	}
	vT := v.Type()
	for i, l := 0, vT.NumField(); i < l; i++ {
		vF = vT.Field(i)
		if !vF.IsExported() || vF.Anonymous {
			continue
		}
		if key = fieldKey(vF); key == "" {
			continue
		}
		switch vF.Type.Kind() {
		case reflect.Struct, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Array:
			jsonData, _ = json.Marshal(v.Field(i).Interface())
			m[key] = string(jsonData)
		case reflect.String:
			m[key] = v.Field(i).String()
		default:
			m[key] = fmt.Sprintf("%v", v.Field(i).Interface())
		}
	}
	return m
}

func fieldKey(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// StructsDelta returns the entries of s1Map whose value differs in s2, that
// is the previous values of every changed field.
func StructsDelta(s1Map map[string]string, s2 any) map[string]string {
	if len(s1Map) == 0 {
		return FromStruct(s2)
	}
	if s2 == nil {
		return map[string]string{}
	}
	var (
		s2Map = FromStruct(s2)
		res   = map[string]string{}
	)
	for k, v := range s1Map {
		if s2Map[k] != v {
			res[k] = v
		}
	}
	return res
}
