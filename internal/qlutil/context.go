// Package qlutil adapts decoded list items to qlbridge's evaluation
// context so that filter expressions can reach into their fields.
package qlutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	qlvalue "github.com/araddon/qlbridge/value"
)

// ContextWrapper exposes an item's pseudo-columns and decoded value fields
// as a qlbridge ContextReader. Pseudo-columns win over fields of the same
// name.
type ContextWrapper struct {
	pseudo map[string]any
	fields map[string]any
}

// NewContextWrapper creates a new ContextWrapper.
func NewContextWrapper(pseudo, fields map[string]any) *ContextWrapper {
	return &ContextWrapper{pseudo: pseudo, fields: fields}
}

// Get implements the qlbridge.ContextReader interface.
func (c *ContextWrapper) Get(key string) (qlvalue.Value, bool) {
	if v, ok := c.pseudo[key]; ok {
		return qlvalue.NewValue(v), true
	}

	v, err := ExtractPath(c.fields, key)
	if err != nil {
		return qlvalue.NewErrorValue(err), false
	}
	return qlvalue.NewValue(v), true
}

// Row implements the qlbridge.ContextReader interface.
func (c *ContextWrapper) Row() map[string]qlvalue.Value {
	row := make(map[string]qlvalue.Value, len(c.pseudo)+len(c.fields))
	for k, v := range c.fields {
		row[k] = qlvalue.NewValue(v)
	}
	for k, v := range c.pseudo {
		row[k] = qlvalue.NewValue(v)
	}
	return row
}

// Ts implements the qlbridge.ContextReader interface.
func (c *ContextWrapper) Ts() time.Time { return time.Time{} }

// ExtractPath digs a dotted path out of decoded msgpack data. A "*" part
// fans out over the elements of a slice, flattening one level.
func ExtractPath(v any, path string) (any, error) {
	parts := strings.SplitN(path, ".", 2)

	if len(parts) == 0 {
		return v, nil
	}
	if len(parts) > 1 && parts[0] == "" {
		return ExtractPath(v, parts[1])
	}
	if v == nil {
		return nil, fmt.Errorf("cannot extract path %q from nil", path)
	}

	switch vv := v.(type) {
	case map[string]any:
		var ok bool
		v, ok = vv[parts[0]]
		if !ok {
			return nil, fmt.Errorf("key %q not found", parts[0])
		}
	case map[any]any:
		var ok bool
		v, ok = vv[parts[0]]
		if !ok {
			return nil, fmt.Errorf("key %q not found", parts[0])
		}
	case []any:
		if parts[0] == "*" {
			result := make([]any, 0, len(vv))
			for _, iv := range vv {
				if len(parts) > 1 {
					var err error
					iv, err = ExtractPath(iv, parts[1])
					if err != nil {
						return nil, err
					}
				}
				switch iv := iv.(type) {
				case []any:
					result = append(result, iv...)
				default:
					result = append(result, iv)
				}
			}
			return result, nil
		}

		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", parts[0], err)
		}
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("index %d out of range", i)
		}
		v = vv[i]
	default:
		return nil, fmt.Errorf("cannot extract path %q from %T", path, v)
	}

	if len(parts) == 1 {
		return v, nil
	}

	return ExtractPath(v, parts[1])
}
