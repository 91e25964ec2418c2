package models

import (
	"encoding/json"
	"strconv"
)

// ID is an upstream identity kept in its original JSON form, string or number.
type ID struct {
	value   string
	numeric bool
}

func StringID(value string) ID {
	return ID{value: value}
}

func NumericID(value string) ID {
	return ID{value: value, numeric: true}
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) IsNumeric() bool {
	return id.numeric
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return []byte(strconv.Quote(id.value)), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil && len(data) > 0 && data[0] != '"' {
		*id = NumericID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*id = ID{}
		return nil
	}
	*id = StringID(s)
	return nil
}

const (
	DefaultCurrency = "USD"
	UntitledTour    = "Untitled tour"
)

// Tour is the card-friendly record served to the frontend.
type Tour struct {
	ID          ID       `json:"id,omitzero"`
	Title       string   `json:"title"`
	Subtitle    *string  `json:"subtitle"`
	Slug        *string  `json:"slug"`
	Cover       *string  `json:"cover"`
	Rating      *float64 `json:"rating"`
	RatingCount *int64   `json:"ratingCount"`
	FromPrice   *float64 `json:"fromPrice"`
	Currency    string   `json:"currency"`
	Duration    *string  `json:"duration"`
	URL         *string  `json:"url"`
}

// TourDetail is a Tour plus the untouched upstream payload, for fields the
// canonical schema does not carry yet.
type TourDetail struct {
	Tour
	Raw json.RawMessage `json:"raw"`
}
