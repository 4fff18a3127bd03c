// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach a handler.
//
// Core concepts:
//   - Validator: validates a raw JSON payload against a declared schema and
//     decodes it into the handler's input type.
//   - ValidationError: the list of violations, matched with
//     errors.Is(err, ErrValidationFailed).
//
// Handlers only ever receive payloads that passed validation.
package validators

import "context"

// Validator validates a raw JSON payload and, on success, decodes it into dst.
// dst is left untouched when validation fails.
type Validator interface {
	Decode(ctx context.Context, payload []byte, dst any) error
}
