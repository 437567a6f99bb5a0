package command

import "errors"

// Index errors
var (
	ErrNotFound      = errors.New("command not found")
	ErrNilDescriptor = errors.New("descriptor cannot be nil")
)

// Index is the flat key → Descriptor namespace. Iteration follows first
// insertion order; a replaced key keeps its original position.
type Index struct {
	keys  []string
	byKey map[string]*Descriptor
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{
		keys:  make([]string, 0),
		byKey: make(map[string]*Descriptor),
	}
}

// Put inserts d, returning the descriptor it replaced (nil if the key was new).
// Put is only called during compilation; a published Index is never mutated.
func (x *Index) Put(d *Descriptor) (*Descriptor, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}
	prev, exists := x.byKey[d.Key()]
	if !exists {
		x.keys = append(x.keys, d.Key())
	}
	x.byKey[d.Key()] = d
	return prev, nil
}

// Lookup returns the descriptor for key.
func (x *Index) Lookup(key string) (*Descriptor, bool) {
	d, ok := x.byKey[key]
	return d, ok
}

// Get returns the descriptor for key or ErrNotFound.
func (x *Index) Get(key string) (*Descriptor, error) {
	if d, ok := x.byKey[key]; ok {
		return d, nil
	}
	return nil, ErrNotFound
}

// Len returns the number of commands in the namespace.
func (x *Index) Len() int {
	return len(x.keys)
}

// Keys returns a copy of the keys in iteration order.
func (x *Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Descriptors returns the descriptors in iteration order.
func (x *Index) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(x.keys))
	for i, k := range x.keys {
		out[i] = x.byKey[k]
	}
	return out
}
