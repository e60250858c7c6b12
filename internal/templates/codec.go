package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/packlist/internal/model"
)

// Marshal encodes templates as one JSON object, name -> item array,
// with keys in slice order.
func Marshal(ts []model.Template) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range ts {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(t.Name)
		if err != nil {
			return nil, fmt.Errorf("json marshal name: %w", err)
		}
		v, err := json.Marshal(model.Clone(t.Items))
		if err != nil {
			return nil, fmt.Errorf("json marshal %q: %w", t.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Unmarshal decodes what Marshal produced, keeping key order.
// Duplicate or empty names and invalid items are errors.
func Unmarshal(b []byte) ([]model.Template, error) {
	dec := json.NewDecoder(bytes.NewReader(b))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var out []model.Template
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json token: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected template name, got %v", tok)
		}
		if name == "" {
			return nil, fmt.Errorf("empty template name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate template %q", name)
		}
		seen[name] = true

		var items []model.Item
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("json unmarshal %q: %w", name, err)
		}
		for _, it := range items {
			if err := it.Validate(); err != nil {
				return nil, fmt.Errorf("template %q: %w", name, err)
			}
		}
		out = append(out, model.Template{Name: name, Items: model.Clone(items)})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after templates")
	}
	return out, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("json token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
