package handlers

import (
	"encoding/json"
	"testing"
)

func TestOptionalID_TriState(t *testing.T) {
	type body struct {
		Related OptionalID `json:"related"`
	}

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if absent.Related.Present {
		t.Error("absent field reported as present")
	}

	var null body
	if err := json.Unmarshal([]byte(`{"related": null}`), &null); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !null.Related.Present || null.Related.Value != nil {
		t.Errorf("null field: present=%v value=%v", null.Related.Present, null.Related.Value)
	}

	var set body
	if err := json.Unmarshal([]byte(`{"related": 7}`), &set); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !set.Related.Present || set.Related.Value == nil || *set.Related.Value != 7 {
		t.Errorf("set field: present=%v value=%v", set.Related.Present, set.Related.Value)
	}

	var bad body
	if err := json.Unmarshal([]byte(`{"related": "seven"}`), &bad); err == nil {
		t.Error("non-numeric id accepted")
	}
}
