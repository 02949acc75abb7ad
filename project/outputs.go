// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"context"
	"fmt"

	"github.com/hie-dave/lpjg-gui-sub000/parser"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/hie-dave/lpjg-gui-sub000/resolve"
	"go.uber.org/zap"
)

// Parser returns a parser
// for the output files of the project.
func (p *Project) Parser(logger *zap.Logger) (*parser.Parser, error) {
	r := resolve.New(logger)
	if err := r.BuildLookup(p); err != nil {
		return nil, fmt.Errorf("project %q: %v", p.name, err)
	}
	return parser.New(r, logger), nil
}

// Quantity reads an output file
// as defined in a project.
func (p *Project) Quantity(ctx context.Context, prs *parser.Parser, fileType string) (*quantity.Quantity, error) {
	name := p.FilePath(fileType)
	if name == "" {
		return nil, fmt.Errorf("output %q not defined in project %q", fileType, p.name)
	}
	return prs.Parse(ctx, name)
}

// Quantities reads the output files
// of the given file types,
// using cpu parallel readers.
// If no type is given,
// all the outputs of the project are read.
func (p *Project) Quantities(ctx context.Context, prs *parser.Parser, cpu int, fileTypes ...string) ([]*quantity.Quantity, error) {
	if len(fileTypes) == 0 {
		fileTypes = p.Types()
	}
	paths := make([]string, 0, len(fileTypes))
	for _, ft := range fileTypes {
		name := p.FilePath(ft)
		if name == "" {
			return nil, fmt.Errorf("output %q not defined in project %q", ft, p.name)
		}
		paths = append(paths, name)
	}
	return prs.ParseAll(ctx, paths, cpu)
}

// Layers reads the header of an output file
// as defined in a project.
func (p *Project) Layers(ctx context.Context, prs *parser.Parser, fileType string) ([]quantity.LayerMetadata, error) {
	name := p.FilePath(fileType)
	if name == "" {
		return nil, fmt.Errorf("output %q not defined in project %q", fileType, p.name)
	}
	return prs.ParseHeader(ctx, name)
}
