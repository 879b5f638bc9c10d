package validators

import (
	"encoding/json"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// NormalizeSubmissionData keeps only the keys that name an active field of the
// form and checks that every kept value is a JSON scalar (string, number,
// boolean or null). Numbers are converted to float64.
//
// Any non-scalar value is reported as a violation of its field.
func NormalizeSubmissionData(data models.SubmissionData, fields []models.Field) (models.SubmissionData, error) {
	normalized := make(models.SubmissionData, len(data))
	var violations []models.Violation

	for _, field := range fields {
		if !field.IsActive {
			continue
		}
		value, ok := data[field.Name]
		if !ok {
			continue
		}

		scalar, ok := toScalar(value)
		if !ok {
			violations = append(violations, models.Violation{
				Field:   field.Name,
				Message: fmt.Sprintf("%s must be a single value", field.DisplayName()),
			})
			continue
		}
		normalized[field.Name] = scalar
	}

	if err := NewValidationError(violations); err != nil {
		return nil, err
	}
	return normalized, nil
}

func toScalar(value any) (any, bool) {
	switch v := value.(type) {
	case nil, string, bool, float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	if n, ok := toNumber(value); ok {
		return n, true
	}
	return nil, false
}
