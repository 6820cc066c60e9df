package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Attraction is a single catalog record. The catalog source is free to
// encode the id as a JSON number or a JSON string; it is always held and
// compared as a string here.
type Attraction struct {
	ID          FlexID  `json:"id"`
	Title       string  `json:"title"`
	City        string  `json:"city"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// FlexID is an attraction identifier that unmarshals from either a JSON
// string or a JSON number.
type FlexID string

// UnmarshalJSON accepts "42" and 42 alike.
func (id *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		*id = FlexID(unquoted)
		return nil
	}
	*id = FlexID(s)
	return nil
}

// MarshalJSON always emits the id as a JSON string.
func (id FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

// IDString normalizes an attraction id of any representation to its string
// form. Membership tests and catalog lookups always compare normalized
// strings, so IDString("42"), IDString(42) and IDString(42.0) all agree.
func IDString(id any) string {
	switch v := id.(type) {
	case string:
		return strings.TrimSpace(v)
	case FlexID:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
