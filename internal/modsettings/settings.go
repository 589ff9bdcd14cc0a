// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"fmt"
	"io"

	"github.com/ManuGH/belt/internal/ptree"
)

// Settings is the decoded content of a mod-settings.dat file.
type Settings struct {
	version Version
	scopes  [scopeCount]scopeValues
	order   [scopeCount]Scope // root dictionary order
	opts    ptree.Options
}

// scopeValues keeps settings in file order so a load/save cycle without
// changes reproduces the original layout.
type scopeValues struct {
	keys   []string
	values map[string]Value
}

func (sv *scopeValues) set(key string, v Value) (Value, bool) {
	if sv.values == nil {
		sv.values = make(map[string]Value)
	}
	prev, ok := sv.values[key]
	if !ok {
		sv.keys = append(sv.keys, key)
	}
	sv.values[key] = v
	return prev, ok
}

func (sv *scopeValues) remove(key string) (Value, bool) {
	prev, ok := sv.values[key]
	if !ok {
		return nil, false
	}
	delete(sv.values, key)
	for i, k := range sv.keys {
		if k == key {
			sv.keys = append(sv.keys[:i], sv.keys[i+1:]...)
			break
		}
	}
	return prev, true
}

// Option configures decoding and encoding.
type Option func(*Settings)

// WithTreeOptions overrides the PropertyTree layout options.
func WithTreeOptions(o ptree.Options) Option {
	return func(s *Settings) {
		s.opts = o
	}
}

// New returns empty settings carrying the given version header.
func New(version Version, opts ...Option) *Settings {
	s := &Settings{
		version: version,
		order:   Scopes,
		opts:    ptree.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decode parses a complete settings file image.
func Decode(data []byte, opts ...Option) (*Settings, error) {
	s := New(Version{}, opts...)
	r := ptree.NewReader(data)

	version, err := readVersion(r)
	if err != nil {
		return nil, fmt.Errorf("read version header: %w", err)
	}
	s.version = version

	root, err := s.opts.ReadValue(r)
	if err != nil {
		return nil, fmt.Errorf("decode property tree: %w", err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("decode property tree: %w", &ptree.DecodeError{Offset: r.Offset(), Err: ptree.ErrTrailingData})
	}
	if err := s.loadTree(root); err != nil {
		return nil, err
	}
	return s, nil
}

// Read decodes settings from r.
func Read(r io.Reader, opts ...Option) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return Decode(data, opts...)
}

func (s *Settings) loadTree(root ptree.Value) error {
	rootDict, ok := root.AsDict()
	if !ok {
		return ErrRootNotDictionary
	}
	for _, scope := range Scopes {
		scopeTree, ok := rootDict.Get(scope.Key())
		if !ok {
			return &MissingScopeError{Name: scope.Key()}
		}
		scopeDict, ok := scopeTree.AsDict()
		if !ok {
			return &MissingScopeError{Name: scope.Key()}
		}
		sv := &s.scopes[scope]
		for key, wrapper := range scopeDict.All() {
			wrapperDict, ok := wrapper.AsDict()
			if !ok {
				return &MissingValueWrapperError{Scope: scope, Key: key}
			}
			inner, ok := wrapperDict.Get("value")
			if !ok {
				return &MissingValueWrapperError{Scope: scope, Key: key}
			}
			v, err := narrow(scope, key, inner)
			if err != nil {
				return err
			}
			sv.set(key, v)
		}
	}

	n := 0
	for _, key := range rootDict.Keys() {
		if scope, err := ParseScope(key); err == nil {
			s.order[n] = scope
			n++
		}
	}
	return nil
}

// Version returns the header carried through from the loaded file.
func (s *Settings) Version() Version {
	return s.version
}

// Get returns the value of key in scope.
func (s *Settings) Get(scope Scope, key string) (Value, bool) {
	if !scope.Valid() {
		return nil, false
	}
	v, ok := s.scopes[scope].values[key]
	return v, ok
}

// Set stores v under key in scope and returns the value it replaced. A nil v
// removes the key and returns the removed value. Other scopes are untouched.
// An invalid scope is ignored.
func (s *Settings) Set(scope Scope, key string, v Value) (Value, bool) {
	if !scope.Valid() {
		return nil, false
	}
	sv := &s.scopes[scope]
	if v == nil {
		return sv.remove(key)
	}
	return sv.set(key, v)
}

// Keys returns the setting names of scope in file order, followed by keys
// added since loading.
func (s *Settings) Keys(scope Scope) []string {
	if !scope.Valid() {
		return nil
	}
	return append([]string(nil), s.scopes[scope].keys...)
}

// Len returns the number of settings in scope.
func (s *Settings) Len(scope Scope) int {
	if !scope.Valid() {
		return 0
	}
	return len(s.scopes[scope].keys)
}

// Tree builds the PropertyTree form of the settings: a root dictionary of the
// three scopes, each mapping keys to {"value": X} wrappers. Scopes appear in
// the order of the loaded file, or startup, runtime-global, runtime-per-user
// for settings made with New. Root entries other than the three scopes are
// not kept.
func (s *Settings) Tree() ptree.Value {
	root := ptree.NewDict()
	for _, scope := range s.order {
		sv := &s.scopes[scope]
		scopeDict := ptree.NewDict()
		for _, key := range sv.keys {
			wrapper := ptree.NewDict(ptree.Entry{Key: "value", Value: sv.values[key].tree()})
			scopeDict.Set(key, ptree.Dictionary(wrapper))
		}
		root.Set(scope.Key(), ptree.Dictionary(scopeDict))
	}
	return ptree.Dictionary(root)
}

// Encode returns the complete file image: version header then tree.
func (s *Settings) Encode() ([]byte, error) {
	w := ptree.NewWriter(1024)
	w.WriteBytes(s.version[:])
	if err := s.opts.WriteValue(w, s.Tree()); err != nil {
		return nil, fmt.Errorf("encode property tree: %w", err)
	}
	return w.Bytes(), nil
}

// WriteTo writes the file image to w.
func (s *Settings) WriteTo(w io.Writer) (int64, error) {
	data, err := s.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
