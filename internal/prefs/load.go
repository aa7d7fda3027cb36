// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// ErrMalformed marks a preferences document that is not valid JSON of the expected shape.
var ErrMalformed = errors.New("malformed preferences document")

// LoadError describes a fatal problem reading a preferences document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("preferences %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads a preferences document from path.
func LoadFile(path string) (Input, error) {
	data, err := os.ReadFile(path) //nolint:gosec // preferences path comes from operator input
	if err != nil {
		return Input{}, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes a preferences document. name is used only for error reporting.
// An empty document yields the zero Input, which normalizes to all defaults.
// Only unparsable JSON or a document that is not an object is fatal; keys that are
// not recognized and values of the wrong JSON type are recorded on the Input and
// reported by Normalize.
func Parse(name string, data []byte) (Input, error) {
	var in Input
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Input{}, &LoadError{Path: name, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	d := decoder{in: &in}
	d.object(obj, reflect.ValueOf(&in).Elem(), "")
	sort.Strings(in.Unknown)
	return in, nil
}

// decoder fills an Input one field at a time so a single mistyped value does not
// discard the rest of the document.
type decoder struct {
	in *Input
}

// object decodes the keys of obj into the struct v. Keys are matched
// case-insensitively against json tags and visited in sorted order.
func (d *decoder) object(obj map[string]json.RawMessage, v reflect.Value, prefix string) {
	fields := jsonFields(v.Type())

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := obj[key]
		idx, ok := fields[strings.ToLower(key)]
		if !ok {
			d.in.Unknown = append(d.in.Unknown, prefix+key)
			continue
		}
		if isNull(raw) {
			continue
		}

		field := v.Field(idx)
		path := prefix + v.Type().Field(idx).Tag.Get("json")
		path, _, _ = strings.Cut(path, ",")

		if field.Kind() == reflect.Struct {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(raw, &nested); err != nil {
				d.invalid(path, raw, "defaults")
				continue
			}
			d.object(nested, field, path+".")
			continue
		}

		target := reflect.New(field.Type())
		if err := json.Unmarshal(raw, target.Interface()); err != nil {
			d.invalid(path, raw, zeroDefault(field.Kind()))
			continue
		}
		field.Set(target.Elem())
	}
}

func (d *decoder) invalid(path string, raw json.RawMessage, def string) {
	d.in.Invalid = append(d.in.Invalid, InvalidValue{Path: path, Value: rawText(raw), Default: def})
}

// zeroDefault describes the value a mistyped field falls back to. Strings return
// empty so Normalize can substitute the field's documented default.
func zeroDefault(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "false"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "0"
	case reflect.Slice:
		return "[]"
	default:
		return ""
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// rawText renders a raw JSON value for a note: strings unquoted, anything else compact.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

// jsonFields maps the lowercased json names of t's exported fields to their indices,
// matching the decoder's case-insensitive key handling.
func jsonFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields[strings.ToLower(name)] = i
	}
	return fields
}
