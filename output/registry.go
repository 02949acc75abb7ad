// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package output

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownFileType is returned when a file type
// is not in the catalog.
var ErrUnknownFileType = errors.New("unknown output file type")

var (
	registry  map[string]Metadata
	fileTypes []string
)

func init() {
	registry = make(map[string]Metadata, len(definitions))
	for _, md := range definitions {
		if _, dup := registry[md.FileType]; dup {
			panic(fmt.Sprintf("output: file type %q defined twice", md.FileType))
		}
		registry[md.FileType] = md
		fileTypes = append(fileTypes, md.FileType)
	}
	slices.Sort(fileTypes)
}

// Get returns the metadata of a file type.
func Get(fileType string) (Metadata, error) {
	md, ok := registry[fileType]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %q", ErrUnknownFileType, fileType)
	}
	return md, nil
}

// FileTypes returns the known file types,
// sorted by name.
func FileTypes() []string {
	return slices.Clone(fileTypes)
}

// All returns the metadata of all known file types,
// sorted by file type.
func All() []Metadata {
	all := make([]Metadata, 0, len(fileTypes))
	for _, ft := range fileTypes {
		all = append(all, registry[ft])
	}
	return all
}
