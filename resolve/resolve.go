// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package resolve implements a bidirectional lookup
// between the filenames configured for a simulation
// and the known output file types.
package resolve

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a filename,
// or a file type,
// is not enabled in the current lookup table.
var ErrNotFound = errors.New("output file not found")

// A Source provides the top level parameters
// of a simulation configuration.
//
// TopLevelParameter returns the value of a parameter
// and true if the parameter is defined.
type Source interface {
	TopLevelParameter(name string) (string, bool)
}

type table struct {
	byName map[string]string
	byType map[string]string
}

var empty = &table{
	byName: map[string]string{},
	byType: map[string]string{},
}

// A Resolver maps output filenames to file types.
//
// Lookups are safe for concurrent use.
// Calls to BuildLookup should be serialized by the caller.
type Resolver struct {
	logger *zap.Logger
	t      atomic.Pointer[table]
}

// New returns a new resolver
// with an empty lookup table.
func New(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{logger: logger}
	r.t.Store(empty)
	return r
}

// BuildLookup replaces the lookup table
// with the filenames defined in the source
// for each known output file type.
//
// If two file types share the same filename
// an error is returned
// and the previous table is kept.
func (r *Resolver) BuildLookup(src Source) error {
	types := output.FileTypes()
	r.logger.Debug("building output file lookup table", zap.Int("known", len(types)))

	t := &table{
		byName: make(map[string]string),
		byType: make(map[string]string),
	}
	for _, ft := range types {
		name, ok := src.TopLevelParameter(ft)
		if !ok || name == "" {
			continue
		}
		if prev, dup := t.byName[name]; dup {
			return fmt.Errorf("filename %q used by file types %q and %q", name, prev, ft)
		}
		t.byName[name] = ft
		t.byType[ft] = name
	}

	r.t.Store(t)
	r.logger.Debug("output file lookup table ready", zap.Int("enabled", len(t.byType)))
	return nil
}

// ResolveType returns the file type
// of an output filename.
func (r *Resolver) ResolveType(filename string) (string, error) {
	t := r.t.Load()
	if ft, ok := t.byName[filename]; ok {
		return ft, nil
	}
	return "", fmt.Errorf("%w: no file type for filename %q (have %d registered output files)", ErrNotFound, filename, len(t.byName))
}

// TryResolveType returns the file type
// of an output filename,
// and false if the filename is not enabled.
func (r *Resolver) TryResolveType(filename string) (string, bool) {
	ft, ok := r.t.Load().byName[filename]
	return ft, ok
}

// ResolveFilename returns the filename
// of an output file type.
func (r *Resolver) ResolveFilename(fileType string) (string, error) {
	t := r.t.Load()
	if name, ok := t.byType[fileType]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: no filename for file type %q (have %d registered output files)", ErrNotFound, fileType, len(t.byType))
}

// FileTypes returns the enabled file types,
// sorted by name.
func (r *Resolver) FileTypes() []string {
	t := r.t.Load()
	types := make([]string, 0, len(t.byType))
	for ft := range t.byType {
		types = append(types, ft)
	}
	slices.Sort(types)
	return types
}
