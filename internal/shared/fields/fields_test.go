package fields

import (
	"encoding/json"
	"testing"
)

func TestTextAcceptsLooseScalars(t *testing.T) {
	var payload struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
		E Text `json:"e"`
	}
	if err := json.Unmarshal([]byte(`{"a":" hi ","b":3.8,"c":true,"d":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A.String() != " hi " || payload.A.Trimmed() != "hi" {
		t.Fatalf("unexpected a %q", payload.A)
	}
	if payload.B != "3.8" || payload.C != "true" || payload.D != "" || payload.E != "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestTextRejectsObjects(t *testing.T) {
	var v Text
	if err := json.Unmarshal([]byte(`{"x":1}`), &v); err == nil {
		t.Fatalf("expected error for object")
	}
}

func TestFlagVariants(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`"true"`:  true,
		`"no"`:    false,
		`1`:       true,
		`0`:       false,
		`null`:    false,
		`"1"`:     true,
		`"TRUE" `: true,
	}
	for in, want := range cases {
		var f Flag
		if err := json.Unmarshal([]byte(in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if bool(f) != want {
			t.Fatalf("%s: expected %v, got %v", in, want, f)
		}
	}
}

func TestIntVariants(t *testing.T) {
	cases := map[string]int64{
		`120`:    120,
		`"45"`:   45,
		`12.9`:   12,
		`null`:   0,
		`""`:     0,
		`"  7 "`: 7,
		`-3`:     -3,
		`"1e2"`:  100,
		`0`:      0,
		`"0012"`: 12,
	}
	for in, want := range cases {
		var i Int
		if err := json.Unmarshal([]byte(in), &i); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if int64(i) != want {
			t.Fatalf("%s: expected %d, got %d", in, want, i)
		}
	}

	var bad Int
	if err := json.Unmarshal([]byte(`"abc"`), &bad); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}
