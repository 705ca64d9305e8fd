// Package params reads SWIFT-style YAML parameter files.
//
// A parameter file is a mapping of sections to mappings of scalar values:
//
//	SPH:
//	  viscosity_alpha: 0.8
//	  with_div_B_cleaning: 1
//
// Parameters are addressed as "Section:name". Every lookup is recorded so the
// set of parameters a run actually consumed can be written back out.
package params

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is an in-memory parameter file. The zero value is not usable; build
// one with Load, Parse or New.
type File struct {
	mu       sync.Mutex
	sections map[string]map[string]*yaml.Node
	used     map[string]*yaml.Node
}

// New returns an empty parameter file. Every optional lookup against it
// yields its default.
func New() *File {
	return &File{
		sections: make(map[string]map[string]*yaml.Node),
		used:     make(map[string]*yaml.Node),
	}
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte) (*File, error) {
	var raw map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	f := New()
	for section, entries := range raw {
		values := make(map[string]*yaml.Node, len(entries))
		for name, node := range entries {
			if err := checkScalar(&node); err != nil {
				return nil, &KeyError{Key: section + ":" + name, Wrapped: err}
			}
			n := node
			values[name] = &n
		}
		f.sections[section] = values
	}
	return f, nil
}

// Override sets a parameter from a "Section:name:value" string, the form
// accepted by the -P command-line flag.
func (f *File) Override(spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("%w: override %q is not Section:name:value", ErrSyntax, spec)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(parts[2]), &doc); err != nil {
		return fmt.Errorf("%w: override %q: %v", ErrSyntax, spec, err)
	}
	if len(doc.Content) != 1 {
		return fmt.Errorf("%w: override %q has no value", ErrSyntax, spec)
	}
	if err := checkScalar(doc.Content[0]); err != nil {
		return &KeyError{Key: parts[0] + ":" + parts[1], Wrapped: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	section, ok := f.sections[parts[0]]
	if !ok {
		section = make(map[string]*yaml.Node)
		f.sections[parts[0]] = section
	}
	section[parts[1]] = doc.Content[0]
	return nil
}

// Has reports whether key is present in the file.
func (f *File) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok, _ := f.lookup(key)
	return ok
}

func (f *File) Float(key string) (float64, error) {
	var v float64
	if err := f.required(key, func(n *yaml.Node) error { return n.Decode(&v) }); err != nil {
		return 0, err
	}
	return v, nil
}

func (f *File) OptFloat(key string, def float64) (float64, error) {
	v := def
	if err := f.optional(key, def, func(n *yaml.Node) error { return n.Decode(&v) }); err != nil {
		return 0, err
	}
	return v, nil
}

// Int reads a required integer. YAML booleans are accepted as 0 and 1;
// floats are rejected, even whole ones.
func (f *File) Int(key string) (int, error) {
	var v int
	if err := f.required(key, func(n *yaml.Node) error { return decodeInt(n, &v) }); err != nil {
		return 0, err
	}
	return v, nil
}

func (f *File) OptInt(key string, def int) (int, error) {
	v := def
	if err := f.optional(key, def, func(n *yaml.Node) error { return decodeInt(n, &v) }); err != nil {
		return 0, err
	}
	return v, nil
}

// Used returns the sorted keys that have been looked up, including absent
// optional keys that fell back to their default.
func (f *File) Used() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.used))
	for key := range f.used {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Unused returns the sorted keys present in the file that were never looked up.
func (f *File) Unused() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for section, entries := range f.sections {
		for name := range entries {
			key := section + ":" + name
			if _, ok := f.used[key]; !ok {
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// WriteUsed writes every parameter that has been looked up, with the value it
// resolved to, as a parameter file.
func (f *File) WriteUsed(w io.Writer) error {
	f.mu.Lock()
	grouped := make(map[string]map[string]*yaml.Node)
	for key, node := range f.used {
		section, name, _ := strings.Cut(key, ":")
		if grouped[section] == nil {
			grouped[section] = make(map[string]*yaml.Node)
		}
		grouped[section][name] = node
	}
	f.mu.Unlock()

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range sortedKeys(grouped) {
		entries := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range sortedKeys(grouped[section]) {
			node := *grouped[section][name]
			node.HeadComment, node.LineComment, node.FootComment = "", "", ""
			entries.Content = append(entries.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: name}, &node)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: section}, entries)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func (f *File) required(key string, decode func(*yaml.Node) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	node, ok, err := f.lookup(key)
	if err != nil {
		return err
	}
	if !ok {
		return &KeyError{Key: key, Wrapped: ErrMissingKey}
	}
	if err := decode(node); err != nil {
		return &KeyError{Key: key, Wrapped: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	f.used[key] = node
	return nil
}

func (f *File) optional(key string, def any, decode func(*yaml.Node) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	node, ok, err := f.lookup(key)
	if err != nil {
		return err
	}
	if !ok {
		var n yaml.Node
		if err := n.Encode(def); err != nil {
			return err
		}
		f.used[key] = &n
		return nil
	}
	if err := decode(node); err != nil {
		return &KeyError{Key: key, Wrapped: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	f.used[key] = node
	return nil
}

// lookup must be called with f.mu held.
func (f *File) lookup(key string) (*yaml.Node, bool, error) {
	section, name, ok := strings.Cut(key, ":")
	if !ok || section == "" || name == "" {
		return nil, false, &KeyError{Key: key, Wrapped: ErrSyntax}
	}
	node, ok := f.sections[section][name]
	return node, ok, nil
}

func checkScalar(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return ErrSyntax
	}
	if n.ShortTag() == "!!null" {
		return fmt.Errorf("%w: empty value", ErrInvalidValue)
	}
	return nil
}

func decodeInt(n *yaml.Node, v *int) error {
	if n.ShortTag() == "!!bool" {
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*v = 0
		if b {
			*v = 1
		}
		return nil
	}
	if n.ShortTag() == "!!float" {
		return fmt.Errorf("%q is not an integer", n.Value)
	}
	return n.Decode(v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
