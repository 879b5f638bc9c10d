// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// ValidateSubmission checks data against the rules of fields and returns
// every violation found. Violations follow field order; within one field the
// order is required, pattern, length, range.
//
// Inactive fields are ignored. A field whose conditional rule makes it not
// applicable is not checked at all. A failed required check ends the checks
// for that field. Length rules only apply to string values and range rules
// only to numeric values, whatever the declared field type.
//
// ValidateSubmission has no side effects and never panics on decoded JSON
// input.
func ValidateSubmission(data models.SubmissionData, fields []models.Field) []models.Violation {
	violations := make([]models.Violation, 0)

	for _, field := range fields {
		if !field.IsActive {
			continue
		}
		if !isApplicable(data, field.Conditional) {
			continue
		}
		violations = append(violations, validateField(data[field.Name], field)...)
	}

	return violations
}

func validateField(value any, field models.Field) []models.Violation {
	rules := field.Validation

	if isEmptyValue(value) {
		if rules.Required {
			return []models.Violation{newViolation(field, fmt.Sprintf("%s is required", field.DisplayName()))}
		}
		return nil
	}

	var violations []models.Violation

	if rules.Pattern != "" {
		// definitions are checked on save, so a broken pattern here is skipped
		if re, err := regexp.Compile(rules.Pattern); err == nil && !re.MatchString(stringify(value)) {
			violations = append(violations, newViolation(field, fmt.Sprintf("%s format is invalid", field.DisplayName())))
		}
	}

	if s, ok := value.(string); ok {
		length := textLength(s)
		if rules.MinLength != nil && length < *rules.MinLength {
			violations = append(violations, newViolation(field, fmt.Sprintf("%s must be at least %d characters", field.DisplayName(), *rules.MinLength)))
		}
		if rules.MaxLength != nil && length > *rules.MaxLength {
			violations = append(violations, newViolation(field, fmt.Sprintf("%s must be at most %d characters", field.DisplayName(), *rules.MaxLength)))
		}
	}

	if n, ok := toNumber(value); ok {
		if rules.Min != nil && n < *rules.Min {
			violations = append(violations, newViolation(field, fmt.Sprintf("%s must be at least %s", field.DisplayName(), formatNumber(*rules.Min))))
		}
		if rules.Max != nil && n > *rules.Max {
			violations = append(violations, newViolation(field, fmt.Sprintf("%s must be at most %s", field.DisplayName(), formatNumber(*rules.Max))))
		}
	}

	return violations
}

// newViolation prefers the field's custom message over the generated one.
func newViolation(field models.Field, generated string) models.Violation {
	message := generated
	if field.Validation.CustomMessage != "" {
		message = field.Validation.CustomMessage
	}
	return models.Violation{Field: field.Name, Message: message}
}

// isApplicable evaluates a conditional rule. ShowWhen wins over HideWhen;
// a rule with neither set leaves the field applicable.
func isApplicable(data models.SubmissionData, cond *models.FieldConditional) bool {
	if cond == nil || cond.DependsOn == "" {
		return true
	}

	other, present := data[cond.DependsOn]

	switch {
	case cond.ShowWhen.Set:
		return present && strictEqual(other, cond.ShowWhen.Value)
	case cond.HideWhen.Set:
		return !present || !strictEqual(other, cond.HideWhen.Value)
	default:
		return true
	}
}

// strictEqual compares two decoded JSON values without type coercion.
// Numbers compare by value regardless of their Go representation.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if x, ok := toNumber(a); ok {
		y, ok := toNumber(b)
		return ok && x == y
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// textLength counts UTF-16 code units, so a character outside the basic
// multilingual plane counts as two.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func toNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	}
	if n, ok := toNumber(value); ok {
		return formatNumber(n)
	}
	return fmt.Sprint(value)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
