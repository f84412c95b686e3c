// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationKind tells a generator backend which kind of request it is
// serving, so it can pick the model configured for that kind.
type GenerationKind string

const (
	GenerationAnalysis GenerationKind = "analysis"
	GenerationRegistry GenerationKind = "registry"
)

// SchemaType enumerates the JSON shapes a [Schema] can describe.
// Values match the upper-case type names used by structured-output APIs.
type SchemaType string

const (
	SchemaObject  SchemaType = "OBJECT"
	SchemaArray   SchemaType = "ARRAY"
	SchemaString  SchemaType = "STRING"
	SchemaInteger SchemaType = "INTEGER"
	SchemaNumber  SchemaType = "NUMBER"
	SchemaBoolean SchemaType = "BOOLEAN"
)

// Schema is a backend-independent descriptor of the JSON shape a generator
// is asked to produce.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// GenerationContent is the ordered user content of a generation request:
// the optional image goes first, then the text.
type GenerationContent struct {
	Image *InlineImage
	Text  string
}

// GenerationRequest is everything a structured-generation backend needs to
// produce one response.
type GenerationRequest struct {
	Kind              GenerationKind
	SystemInstruction string
	Content           GenerationContent
	Shape             *Schema
}
