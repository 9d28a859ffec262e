package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New("event payload is nil")

// DecodePayload converts an event payload into T.
// In-process publishers hand over T or *T directly; payloads that crossed a
// serialization boundary arrive as generic maps and go through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, ErrNilPayload
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("failed to encode %T payload: %w", input, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to decode payload into %T: %w", result, err)
	}
	return result, nil
}
