// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/models"
)

const codeFence = "```"

// stripFences trims whitespace and, when the whole output is wrapped in a
// fenced code block (optionally tagged, e.g. ```json), returns its body.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, codeFence) || !strings.HasSuffix(s, codeFence) || len(s) < 2*len(codeFence) {
		return s
	}

	body := strings.TrimSuffix(strings.TrimPrefix(s, codeFence), codeFence)
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || !strings.ContainsAny(tag, "{[\"") {
			body = body[nl+1:]
		}
	}
	return strings.TrimSpace(body)
}

// decodeDocument parses raw model output into a generic JSON value, keeping
// numbers as json.Number so integers can be told apart from fractions.
func decodeDocument(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(stripFences(raw)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: trailing data")
	}
	return doc, nil
}

// conform checks value against schema and returns it with integral numbers
// written as plain integers. Unknown object keys are kept as they are.
// A null optional property is dropped.
func conform(value any, schema *models.Schema, path string) (any, error) {
	if schema == nil {
		return value, nil
	}

	switch schema.Type {
	case models.SchemaObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, typeError(path, schema.Type, value)
		}
		for _, key := range schema.Required {
			if v, present := obj[key]; !present || v == nil {
				return nil, fmt.Errorf("%s: missing required property %q", displayPath(path), key)
			}
		}
		for key, prop := range schema.Properties {
			v, present := obj[key]
			if !present {
				continue
			}
			if v == nil {
				delete(obj, key)
				continue
			}
			fixed, err := conform(v, prop, path+"."+key)
			if err != nil {
				return nil, err
			}
			obj[key] = fixed
		}
		return obj, nil

	case models.SchemaArray:
		items, ok := value.([]any)
		if !ok {
			return nil, typeError(path, schema.Type, value)
		}
		for i, item := range items {
			fixed, err := conform(item, schema.Items, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items[i] = fixed
		}
		return items, nil

	case models.SchemaString:
		if _, ok := value.(string); !ok {
			return nil, typeError(path, schema.Type, value)
		}
		return value, nil

	case models.SchemaBoolean:
		if _, ok := value.(bool); !ok {
			return nil, typeError(path, schema.Type, value)
		}
		return value, nil

	case models.SchemaNumber:
		if _, ok := value.(json.Number); !ok {
			return nil, typeError(path, schema.Type, value)
		}
		return value, nil

	case models.SchemaInteger:
		n, ok := value.(json.Number)
		if !ok {
			return nil, typeError(path, schema.Type, value)
		}
		i, err := integral(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayPath(path), err)
		}
		return json.Number(strconv.FormatInt(i, 10)), nil
	}

	return value, nil
}

// integral accepts 42, 42.0 and 4.2e1. Values beyond the int32 range are
// saturated so they still decode into an int field.
func integral(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return saturate(float64(i)), nil
	}

	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", n.String())
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not an integer", n.String())
	}
	return saturate(f), nil
}

func saturate(f float64) int64 {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int64(f)
	}
}

func typeError(path string, want models.SchemaType, got any) error {
	return fmt.Errorf("%s: expected %s, got %s", displayPath(path), strings.ToLower(string(want)), jsonKind(got))
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return "$" + path
}

// decodeInto re-encodes a conformed document and decodes it into out.
func decodeInto(doc any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), out)
}
