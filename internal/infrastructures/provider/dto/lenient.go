package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The types below never fail to unmarshal. A value of an unexpected JSON type
// leaves the field unset, so one drifting key cannot break a whole record.

// Text holds a non-empty string. Numbers and booleans are kept as their JSON text.
type Text struct {
	Value string
	Valid bool
}

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}

	switch v := decodeScalar(data).(type) {
	case string:
		v = strings.TrimSpace(v)
		if v != "" {
			*t = Text{Value: v, Valid: true}
		}
	case json.Number:
		*t = Text{Value: v.String(), Valid: true}
	case bool:
		*t = Text{Value: strconv.FormatBool(v), Valid: true}
	}

	return nil
}

// Number holds a JSON number or a numeric string.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw string
	switch v := decodeScalar(data).(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
	default:
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number{Value: f, Valid: true}
	return nil
}

// Int64 truncates towards zero.
func (n Number) Int64() int64 {
	return int64(n.Value)
}

// Scalar is an identity value: a non-empty string or a number, kept verbatim.
type Scalar struct {
	Value   string
	Numeric bool
	Valid   bool
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	*s = Scalar{}

	switch v := decodeScalar(data).(type) {
	case json.Number:
		*s = Scalar{Value: v.String(), Numeric: true, Valid: true}
	case string:
		v = strings.TrimSpace(v)
		if v != "" {
			*s = Scalar{Value: v, Valid: true}
		}
	}

	return nil
}

func decodeScalar(data []byte) any {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
