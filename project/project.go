// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of output project files.
//
// An output project is a tab-delimited file (TSV)
// that stores the output files
// written by a simulation,
// keyed by its output file type.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hie-dave/lpjg-gui-sub000/output"
)

// A Project represents a collection of paths
// for output file types.
type Project struct {
	name  string
	paths map[string]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[string]string),
	}
}

var header = []string{
	"type",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - type, for the output file type
//   - path, for the path of the output file
//
// Here is an example file:
//
//	# lpjg project files
//	type	path
//	file_anpp	out/anpp.out
//	file_lai	out/lai.out
//	file_mlai	out/mlai.out
//
// Relative paths are relative
// to the directory of the project file.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New()
	p.name = name
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "type"
		ft := row[fields[f]]
		if _, err := output.Get(ft); err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: field %q: %v", name, ln, f, err)
		}

		f = "path"
		p.paths[ft] = row[fields[f]]
	}

	return p, nil
}

// Add adds the path of an output file type to a project.
// It returns the previous value
// for the file type.
// An empty path removes the file type.
func (p *Project) Add(fileType, path string) (string, error) {
	if _, err := output.Get(fileType); err != nil {
		return "", err
	}

	prev := p.paths[fileType]
	if path == "" {
		delete(p.paths, fileType)
		return prev, nil
	}

	for ft, pp := range p.paths {
		if ft != fileType && filepath.Base(pp) == filepath.Base(path) {
			return "", fmt.Errorf("output file %q already used by %q", filepath.Base(path), ft)
		}
	}
	p.paths[fileType] = path
	return prev, nil
}

// Path returns the path of the given output file type,
// as stored in the project.
func (p *Project) Path(fileType string) string {
	return p.paths[fileType]
}

// FilePath returns the path of the given output file type
// ready to be opened.
// Relative paths are joined
// with the directory of the project file.
func (p *Project) FilePath(fileType string) string {
	path := p.paths[fileType]
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(p.name), path)
}

// TopLevelParameter returns the output filename
// of an output file type.
// The filename is the base name of the stored path.
func (p *Project) TopLevelParameter(name string) (string, bool) {
	path, ok := p.paths[name]
	if !ok {
		return "", false
	}
	return filepath.Base(path), true
}

// Types returns the output file types defined on a project.
func (p *Project) Types() []string {
	var types []string
	for ft := range p.paths {
		types = append(types, ft)
	}
	slices.Sort(types)
	return types
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# lpjg project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	for _, ft := range p.Types() {
		row := []string{
			ft,
			p.paths[ft],
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}
