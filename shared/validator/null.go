package validator

import (
	"bytes"
	"encoding/json"
	"reflect"
)

var null = []byte("null")

// RejectNull reports an unmarshal type error when any of the given fields is
// present in the object with an explicit null. Absent fields are fine.
// A body that is not an object is left to the regular decoder.
func RejectNull(data []byte, fields map[string]reflect.Type) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil //nolint:nilerr
	}

	for name, typ := range fields {
		value, ok := raw[name]
		if ok && bytes.Equal(bytes.TrimSpace(value), null) {
			return &json.UnmarshalTypeError{Value: "null", Type: typ, Field: name}
		}
	}

	return nil
}
