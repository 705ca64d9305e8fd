// Package snapshot persists snapshot metadata: named groups of scalar
// attributes written alongside particle output.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const metadataFile = "metadata.yaml"

var (
	ErrNotFound           = errors.New("snapshot: not found")
	ErrDuplicateAttribute = errors.New("snapshot: attribute already written")
	ErrClosed             = errors.New("snapshot: already closed")
)

// Attribute types.
const (
	TypeFloat  = "float"
	TypeInt    = "int"
	TypeString = "string"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Attribute struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Value  float64 `yaml:"value,omitempty"`
	Int    int64   `yaml:"int,omitempty"`
	String string  `yaml:"string,omitempty"`
}

type Group struct {
	Name       string      `yaml:"name"`
	Attributes []Attribute `yaml:"attributes"`

	closed bool
}

type Metadata struct {
	ID        string    `yaml:"id"`
	Index     int       `yaml:"index"`
	Timestamp time.Time `yaml:"timestamp"`
	Groups    []*Group  `yaml:"groups"`
}

// Snapshot is an open snapshot being written. Attributes are buffered until
// Close.
type Snapshot struct {
	dir  string
	meta Metadata
	done bool
}

// Create opens snapshot base_NNNN for writing.
func (s *Store) Create(base string, index int) (*Snapshot, error) {
	id := fmt.Sprintf("%s_%04d", base, index)
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Snapshot{
		dir: dir,
		meta: Metadata{
			ID:        id,
			Index:     index,
			Timestamp: time.Now(),
		},
	}, nil
}

func (sn *Snapshot) ID() string { return sn.meta.ID }

// Group returns the named group, creating it on first use.
func (sn *Snapshot) Group(name string) *Group {
	for _, g := range sn.meta.Groups {
		if g.Name == name {
			return g
		}
	}
	g := &Group{Name: name}
	sn.meta.Groups = append(sn.meta.Groups, g)
	return g
}

// Close writes the metadata file. Groups handed out by the snapshot reject
// writes afterwards. If the write fails the snapshot stays open and Close can
// be retried.
func (sn *Snapshot) Close() error {
	if sn.done {
		return ErrClosed
	}
	if err := sn.write(); err != nil {
		return err
	}

	sn.done = true
	for _, g := range sn.meta.Groups {
		g.closed = true
	}
	return nil
}

func (sn *Snapshot) write() error {
	f, err := os.Create(filepath.Join(sn.dir, metadataFile))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(sn.meta); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Group) WriteFloat(name string, v float64) error {
	return g.add(Attribute{Name: name, Type: TypeFloat, Value: v})
}

func (g *Group) WriteInt(name string, v int) error {
	return g.add(Attribute{Name: name, Type: TypeInt, Int: int64(v)})
}

func (g *Group) WriteString(name string, v string) error {
	return g.add(Attribute{Name: name, Type: TypeString, String: v})
}

func (g *Group) add(a Attribute) error {
	if g.closed {
		return ErrClosed
	}
	if g.Has(a.Name) {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateAttribute, g.Name, a.Name)
	}
	g.Attributes = append(g.Attributes, a)
	return nil
}

func (g *Group) Has(name string) bool {
	_, ok := g.find(name)
	return ok
}

// Names returns attribute names in write order.
func (g *Group) Names() []string {
	names := make([]string, len(g.Attributes))
	for i, a := range g.Attributes {
		names[i] = a.Name
	}
	return names
}

func (g *Group) Float(name string) (float64, bool) {
	a, ok := g.find(name)
	if !ok || a.Type != TypeFloat {
		return 0, false
	}
	return a.Value, true
}

func (g *Group) Int(name string) (int, bool) {
	a, ok := g.find(name)
	if !ok || a.Type != TypeInt {
		return 0, false
	}
	return int(a.Int), true
}

func (g *Group) Text(name string) (string, bool) {
	a, ok := g.find(name)
	if !ok || a.Type != TypeString {
		return "", false
	}
	return a.String, true
}

func (g *Group) find(name string) (Attribute, bool) {
	for _, a := range g.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Lookup returns the named group of a loaded snapshot.
func (m *Metadata) Lookup(group string) (*Group, bool) {
	for _, g := range m.Groups {
		if g.Name == group {
			return g, true
		}
	}
	return nil, false
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	snaps := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	return snaps, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
