package models

import (
	"encoding/json"
	"math"
)

// encoding/json rejects NaN, so overflowed values are written as null.

func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func jsonFloats(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = jsonFloat(v)
	}
	return out
}

// MarshalJSON encodes NaN values as null.
func (s Scalars) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = jsonFloat(v)
	}
	return json.Marshal(out)
}

// MarshalJSON encodes NaN values as null.
func (c Columns) MarshalJSON() ([]byte, error) {
	out := make(map[string][]any, len(c))
	for k, values := range c {
		out[k] = jsonFloats(values)
	}
	return json.Marshal(out)
}

// MarshalJSON encodes NaN parts as null.
func (e Eigenvalue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"re": jsonFloat(e.Re), "im": jsonFloat(e.Im)})
}
