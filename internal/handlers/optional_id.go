package handlers

import (
	"bytes"
	"encoding/json"
)

// OptionalID tracks presence and value of a nullable id field, so a PATCH-style
// body can distinguish three cases a plain *uint cannot:
//   - Present=false: field absent from JSON (leave unchanged)
//   - Present=true, Value=nil: field is JSON null (clear)
//   - Present=true, Value=&id: field carries an id (set)
type OptionalID struct {
	Present bool
	Value   *uint
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the field was
// present in the JSON.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
