// Package fields holds lenient JSON scalar types used by request DTOs.
//
// Clients send loosely typed JSON (a GPA may arrive as 3.8 or "3.8", a flag as
// true or "true"). These types normalise such input to a single Go type and
// decode null as the zero value.
package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text decodes strings, numbers and booleans into a string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case '{', '[':
		return fmt.Errorf("fields: expected text, got %s", kindOf(data[0]))
	default:
		// numbers and booleans keep their literal form
		*t = Text(data)
		return nil
	}
}

// String returns the value as sent.
func (t Text) String() string { return string(t) }

// Trimmed returns the value without surrounding whitespace. Use it for
// identifiers and blank checks, never for free text.
func (t Text) Trimmed() string { return strings.TrimSpace(string(t)) }

// Flag decodes booleans, "true"/"false" style strings and numbers.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}
	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = Flag(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes", "on":
			*f = true
		default:
			*f = false
		}
		return nil
	case '{', '[':
		return fmt.Errorf("fields: expected flag, got %s", kindOf(data[0]))
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("fields: invalid flag %s", data)
		}
		*f = n != 0
		return nil
	}
}

// Int decodes integers, floats (truncated) and numeric strings.
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*i = 0
			return nil
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*i = Int(n)
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("fields: invalid integer %q", raw)
	}
	*i = Int(int64(n))
	return nil
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
