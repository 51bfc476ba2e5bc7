package reportjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ModuleBreakdown maps module names to their per-category counts while
// remembering the order in which the names first appeared. Plain Go maps
// lose document order on round trips, and the report summary is required
// to list modules exactly as the producing engine emitted them.
type ModuleBreakdown struct {
	names  []string
	counts map[string]ModuleCounts
}

// Len reports the number of modules in the breakdown.
func (b *ModuleBreakdown) Len() int {
	return len(b.names)
}

// Modules returns the module names in document order.
func (b *ModuleBreakdown) Modules() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Get returns the counts recorded for a module.
func (b *ModuleBreakdown) Get(name string) (ModuleCounts, bool) {
	c, ok := b.counts[name]
	return c, ok
}

// Set records counts for a module, appending the name on first use and
// overwriting on repeats.
func (b *ModuleBreakdown) Set(name string, c ModuleCounts) {
	if b.counts == nil {
		b.counts = make(map[string]ModuleCounts)
	}
	if _, seen := b.counts[name]; !seen {
		b.names = append(b.names, name)
	}
	b.counts[name] = c
}

// MarshalJSON emits the breakdown as a JSON object whose keys appear in
// document order.
func (b ModuleBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.counts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object token by token so the key order survives
// the trip through encoding/json.
func (b *ModuleBreakdown) UnmarshalJSON(data []byte) error {
	b.names = nil
	b.counts = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read by_module: %w", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("by_module: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read by_module key: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("by_module: expected string key, got %v", tok)
		}
		var c ModuleCounts
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("decode by_module[%s]: %w", name, err)
		}
		b.Set(name, c)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read by_module end: %w", err)
	}
	return nil
}
