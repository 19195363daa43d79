// Package document decodes and encodes JSON while keeping object key order.
//
// Notebook documents are rewritten in place, and both the rename order and the
// emitted layout follow the order keys appear in the source file. Decoded
// values are one of: *Object, []any, string, json.Number, bool or nil.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Object is a JSON object that remembers the order of its keys.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in document order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return append([]string(nil), o.keys...)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[key]

	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. New keys are appended; existing keys keep their position.
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}

	delete(o.values, key)

	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Object returns the value under key if it is an object.
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}

	obj, ok := v.(*Object)

	return obj, ok && obj != nil
}

// String returns the value under key if it is a string.
func (o *Object) String(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// Array returns the value under key if it is an array.
func (o *Object) Array(key string) ([]any, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}

	arr, ok := v.([]any)

	return arr, ok
}

// Decode parses a single JSON value from data.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return v, nil
}

// DecodeObject parses data and requires the top-level value to be an object.
func DecodeObject(data []byte) (*Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %s", kindOf(v))
	}

	return obj, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		obj.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		arr = append(arr, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// MarshalJSON encodes the object with keys in document order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, o); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping key order.
func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := DecodeObject(data)
	if err != nil {
		return err
	}

	*o = *obj

	return nil
}

// Marshal encodes v compactly. HTML characters are not escaped so that text
// round-trips byte for byte.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalIndent encodes v with two-space indentation and a trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			buf.WriteString("null")
			return nil
		}

		buf.WriteByte('{')

		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := encodeScalar(buf, k); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := encodeValue(buf, t.values[k]); err != nil {
				return fmt.Errorf("encoding %q: %w", k, err)
			}
		}

		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')

		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case []string:
		items := make([]any, len(t))
		for i, s := range t {
			items[i] = s
		}

		return encodeValue(buf, items)
	default:
		return encodeScalar(buf, v)
	}

	return nil
}

func encodeScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer

	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))

	return nil
}

func kindOf(v any) string {
	switch v.(type) {
	case *Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
