// Package output serializes parsed results.
package output

import (
	"encoding/json"

	"github.com/aerotools/avlout/pkg/avlout/models"
)

// ToJSON serializes a single result. NaN values are written as null.
func ToJSON(r *models.Result, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// ResultsToJSON serializes results keyed by file name.
func ResultsToJSON(results map[string]*models.Result, pretty bool) ([]byte, error) {
	return marshal(results, pretty)
}

// RunToJSON serializes run results keyed by case number, then output name.
func RunToJSON(results map[int]map[string]*models.Result, pretty bool) ([]byte, error) {
	return marshal(results, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
