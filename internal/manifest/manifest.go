package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest file name.
const FileName = "package.json"

const indent = "    "

// Object is a JSON object that keeps its key order. Parse decodes every
// nested object of a manifest into one.
type Object = orderedmap.OrderedMap[string, any]

// Manifest is a package.json document. Key order is preserved across
// Parse/Marshal at every depth; Set on an existing key keeps its position,
// new keys append.
type Manifest struct {
	fields *Object
}

// New creates an empty Manifest
func New() *Manifest {
	return &Manifest{fields: orderedmap.New[string, any]()}
}

// Parse decodes a package.json document
func Parse(data []byte) (*Manifest, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return &Manifest{fields: fields}, nil
}

func decodeObject(data []byte) (*Object, error) {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, err
	}

	obj := orderedmap.New[string, any](raw.Len())
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		value, err := decodeValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pair.Key, err)
		}
		obj.Set(pair.Key, value)
	}
	return obj, nil
}

func decodeValue(data json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty value")
	}

	switch trimmed[0] {
	case '{':
		return decodeObject(trimmed)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		values := make([]any, len(items))
		for i, item := range items {
			value, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Marshal encodes the manifest with four-space indentation and a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	raw, err := json.Marshal(m.fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode package.json: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent package.json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Get returns the value stored under key
func (m *Manifest) Get(key string) (any, bool) {
	return m.fields.Get(key)
}

// Set stores value under key
func (m *Manifest) Set(key string, value any) {
	m.fields.Set(key, value)
}

// Delete removes key if present
func (m *Manifest) Delete(key string) {
	m.fields.Delete(key)
}

// Keys returns the keys in document order
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, m.fields.Len())
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Name returns the "name" field, or "" when absent.
func (m *Manifest) Name() string {
	return m.str("name")
}

// Version returns the "version" field, or "" when absent.
func (m *Manifest) Version() string {
	return m.str("version")
}

// Clone returns a shallow copy; values are shared, keys are not.
func (m *Manifest) Clone() *Manifest {
	c := New()
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		c.fields.Set(pair.Key, pair.Value)
	}
	return c
}

func (m *Manifest) str(key string) string {
	v, ok := m.fields.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Read loads the manifest at path
func Read(fs filesystem.FileSystem, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Write persists the manifest at path
func Write(fs filesystem.FileSystem, path string, m *Manifest) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
