package models

import "encoding/json"

// OptionalValue is a JSON value that remembers whether it was present in the
// input at all. A literal null is present; an omitted key is not.
type OptionalValue struct {
	Set   bool
	Value any
}

// Some returns a present OptionalValue holding v.
func Some(v any) OptionalValue {
	return OptionalValue{Set: true, Value: v}
}

// IsZero reports whether the value was absent. Used by the omitzero tag.
func (o OptionalValue) IsZero() bool {
	return !o.Set
}

func (o *OptionalValue) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Set = true
	o.Value = v
	return nil
}

func (o OptionalValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
