// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the feed API: collection
// names, version cursors, entity ids, and raw entity payloads.
//
// Validators are injected into the service layer (see the feed validation
// wrapper) so that transport handlers and storage stay free of rule
// enforcement. Field-level scoping lets one validator cover several request
// shapes.
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
