package models

import (
	"encoding/json"
	"fmt"
)

// StringList is an ordered sequence of strings stored in a single text
// column as a JSON array (program features, coach specialties). Order
// within the list is meaningful.
type StringList []string

// Encode serializes the list for storage
func (l StringList) Encode() (string, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

// DecodeStringList parses a stored or caller-supplied serialized list.
// The input must round-trip as a JSON array of strings; anything else is
// rejected rather than stored verbatim.
func DecodeStringList(raw string) (StringList, error) {
	if raw == "" {
		return StringList{}, nil
	}
	var list StringList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("invalid string list encoding: %w", err)
	}
	if list == nil {
		list = StringList{}
	}
	return list, nil
}
