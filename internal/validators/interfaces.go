// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer.
//
// Rules are declared with ozzo-validation. Every failure wraps
// [ErrValidation]; the wrapped ozzo error carries the per-field messages.
package validators

import "context"

// Validator validates an arbitrary request value.
type Validator interface {
	// Validate returns nil when obj is valid, an error wrapping
	// [ErrValidation] when a rule fails and [ErrUnsupportedType] for a value
	// the validator has no rules for.
	Validate(ctx context.Context, obj any) error
}
