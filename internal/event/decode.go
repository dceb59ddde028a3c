package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. In-process publishes carry T
// or *T; payloads read back from the dead letter are generic maps and take a
// JSON round trip.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return out, fmt.Errorf("%s: nil %T", ErrMsgDecodePayload, v)
	case nil:
		return out, fmt.Errorf("%s: empty payload", ErrMsgDecodePayload)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s into %T: %w", ErrMsgDecodePayload, out, err)
	}
	return out, nil
}
