// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema file names under schemas/.
const (
	SchemaCreateUser = "create_user.json"
)

// SchemaValidator validates payloads against a compiled JSON Schema
// (draft 7, with format assertions enabled).
type SchemaValidator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// NewSchemaValidator compiles the embedded schema called name.
func NewSchemaValidator(name string) (*SchemaValidator, error) {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft7)
	compiler.AssertFormat()

	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema resource %s: %w", name, err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return &SchemaValidator{
		schema:  schema,
		printer: message.NewPrinter(language.English),
	}, nil
}

// NewUserValidator returns the validator of POST /users bodies.
func NewUserValidator() (*SchemaValidator, error) {
	return NewSchemaValidator(SchemaCreateUser)
}

// Decode validates payload and unmarshals it into dst.
//
// Returns ErrMalformedPayload for input that is not JSON and a
// *ValidationError for schema violations.
func (v *SchemaValidator) Decode(_ context.Context, payload []byte, dst any) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if err := v.schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return &ValidationError{Details: v.details(ve)}
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return nil
}

// details flattens the cause tree into one entry per leaf violation.
func (v *SchemaValidator) details(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		return []string{fmt.Sprintf("%s: %s", instancePath(ve.InstanceLocation), ve.ErrorKind.LocalizedString(v.printer))}
	}

	var out []string
	for _, cause := range ve.Causes {
		out = append(out, v.details(cause)...)
	}
	return out
}

// instancePath renders a location such as ["tags", "1"] as "$.tags.1".
func instancePath(location []string) string {
	if len(location) == 0 {
		return "$"
	}
	return "$." + strings.Join(location, ".")
}
