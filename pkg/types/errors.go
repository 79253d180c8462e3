package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an argument to a calculator or decoder
// has the wrong shape or is not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// DecodeTags parses a JSON array of strings into condition tags.
// Anything else (objects, numbers, mixed arrays, malformed JSON) fails with
// ErrInvalidInput.
func DecodeTags(data []byte) ([]ConditionTag, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding tag list: %w: %v", ErrInvalidInput, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding tag list: %w: not an array", ErrInvalidInput)
	}

	tags := make([]ConditionTag, len(raw))
	for i, s := range raw {
		tags[i] = ConditionTag(s)
	}
	return tags, nil
}

// TagsFromStrings converts plain strings to condition tags.
func TagsFromStrings(ss []string) []ConditionTag {
	tags := make([]ConditionTag, len(ss))
	for i, s := range ss {
		tags[i] = ConditionTag(s)
	}
	return tags
}
