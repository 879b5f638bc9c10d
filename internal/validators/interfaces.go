// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form definitions when they are saved and
// submitted data when it is received.
//
// Core concepts:
//   - ValidateSubmission: the pure rule engine run against submitted data.
//     It returns every violation, ordered by field.
//   - Validator: generic interface used by services to check definitions
//     (forms, email templates) before they are persisted. Supports optional
//     field-level scoping for targeted validation.
//
// Failures are reported as *ValidationError, which matches ErrValidation
// under errors.Is and exposes the full violation list.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
