package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject indicates the document root is not a JSON object.
var ErrNotObject = errors.New("question bank must be a JSON object")

// Decode reads a single JSON document from r into a Bank.
func Decode(r io.Reader) (Bank, error) {
	var b Bank
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&b); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return b, nil
}

// MarshalJSON encodes the bank as an object whose keys follow category order.
func (b Bank) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range b.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(category.Name)
		if err != nil {
			return nil, err
		}
		questions := category.Questions
		if questions == nil {
			questions = []Question{}
		}
		value, err := marshalUnescaped(questions)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of category arrays, keeping key order.
// A repeated key replaces the earlier value in place. null is not a bank and
// fails with ErrNotObject like any other non-object.
func (b *Bank) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	decoded := Bank{Categories: []Category{}}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		name, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", token)
		}
		var questions []Question
		if err := decoder.Decode(&questions); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		if questions == nil {
			questions = []Question{}
		}
		decoded.Set(name, questions)
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*b = decoded
	return nil
}

// UnmarshalJSON fills in an empty choice list when the field is absent or null.
func (q *Question) UnmarshalJSON(data []byte) error {
	type plain Question
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Choices == nil {
		decoded.Choices = []Choice{}
	}
	*q = Question(decoded)
	return nil
}

// marshalUnescaped encodes v without HTML escaping so prompts like "a<b" stay readable on disk.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
