package lootledger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object with a stable field order, which keeps
// persisted journals diffable. Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append writes one key/value field.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(&w.Buffer, "%q:%s,", key, raw)
	return w
}

// EmbedFrom marshals v to a JSON object and merges its fields into the one
// being built.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("marshal for embedding: %w", err)
		return w
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 2 && trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}' {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	if len(trimmed) > 0 {
		w.Write(trimmed)
		w.WriteString(",")
	}
	return w
}

// Optional writes the field only when the value is not its type's zero.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	switch v := value.(type) {
	case string:
		if v == "" {
			return w
		}
	case int64:
		if v == 0 {
			return w
		}
	case Money:
		if v.IsZero() {
			return w
		}
	}
	return w.Append(key, value)
}

// MarshalJSON closes the object and returns it.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(inner)
	out.WriteByte('}')
	return out.Bytes(), nil
}
