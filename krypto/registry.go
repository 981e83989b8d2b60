package krypto

import (
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
)

// MaxDigestSize is the largest digest any registered algorithm may produce.
const MaxDigestSize = 64

// NewFunc constructs a fresh hash.Hash for an algorithm.
type NewFunc func() (hash.Hash, error)

// Algorithm describes a registered digest.
type Algorithm struct {
	Name string
	Size int

	newHash NewFunc
}

// Registry maps digest names (and aliases) to algorithms.
type Registry struct {
	byName map[string]*Algorithm
	names  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Algorithm)}
}

// LoadDigests returns a registry holding every supported digest.
// The caller must Close it when done.
func LoadDigests() *Registry {
	r := NewRegistry()
	for _, d := range builtinDigests {
		if err := r.Register(d.name, d.size, d.newHash, d.aliases...); err != nil {
			panic(fmt.Sprintf("krypto: register %s: %v", d.name, err))
		}
	}
	return r
}

// Register adds an algorithm under name and any aliases. Names are matched
// case-insensitively.
func (r *Registry) Register(name string, size int, fn NewFunc, aliases ...string) error {
	if r.byName == nil {
		return errors.New("registry is closed")
	}
	name = normalizeName(name)
	if name == "" {
		return errors.New("algorithm name is required")
	}
	if size <= 0 || size > MaxDigestSize {
		return fmt.Errorf("digest size %d out of range 1..%d", size, MaxDigestSize)
	}
	if fn == nil {
		return errors.New("hash constructor is required")
	}

	keys := []string{name}
	for _, a := range aliases {
		if a = normalizeName(a); a != "" {
			keys = append(keys, a)
		}
	}
	for _, k := range keys {
		if _, dup := r.byName[k]; dup {
			return fmt.Errorf("algorithm %q already registered", k)
		}
	}

	alg := &Algorithm{Name: name, Size: size, newHash: fn}
	for _, k := range keys {
		r.byName[k] = alg
	}
	r.names = append(r.names, name)
	sort.Strings(r.names)
	return nil
}

// Lookup resolves name to a registered algorithm.
func (r *Registry) Lookup(name string) (*Algorithm, error) {
	if alg, ok := r.byName[normalizeName(name)]; ok {
		return alg, nil
	}
	return nil, newError(KindUnknownAlgorithm, name, nil)
}

// Names returns the canonical names of all registered algorithms, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Close unloads every algorithm. Lookups on a closed registry fail.
func (r *Registry) Close() {
	r.byName = nil
	r.names = nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
