// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package parser implements reading
// of LPJ-GUESS output files.
//
// An output file is a text table.
// The first line is the header
// and each following line is a data row.
// Fields are separated by one or more spaces or tabs.
// Here is an example of an annual LAI file:
//
//	       Lon       Lat  Year    TeBE    TeNE   Total
//	    150.25    -33.75  2000  0.2154  1.3280  1.5434
//	    150.25    -33.75  2001  0.2287  1.4011  1.6298
//
// The file type is resolved from the base name of the file,
// and the catalog metadata of the file type
// defines which columns are data layers.
package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"go.uber.org/zap"
)

// A TypeResolver returns the file type
// of an output filename.
type TypeResolver interface {
	ResolveType(filename string) (string, error)
}

// A Parser reads output files.
//
// A Parser is safe for concurrent use
// on different files.
type Parser struct {
	logger *zap.Logger
	types  TypeResolver
}

// New returns a new parser
// that uses types to resolve the file type of a file.
func New(types TypeResolver, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		logger: logger,
		types:  types,
	}
}

// Parse reads an output file.
//
// Problems in the content of the file
// are reported with an error
// that matches ErrMalformedData.
// Errors when reading the file
// are returned unchanged.
func (p *Parser) Parse(ctx context.Context, path string) (*quantity.Quantity, error) {
	p.logger.Debug("parsing output file", zap.String("file", path))

	q, err := p.parse(ctx, path)
	if err != nil {
		p.logError(path, err)
		return nil, err
	}
	p.logger.Debug("output file parsed",
		zap.String("file", path),
		zap.Int("layers", len(q.Layers)),
		zap.Int("points", q.Len()),
	)
	return q, nil
}

func (p *Parser) parse(ctx context.Context, path string) (*quantity.Quantity, error) {
	md, err := p.metadata(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(ctx, f, filepath.Base(path), md)
}

// ParseHeader reads the header of an output file,
// and returns the data layers of the file.
func (p *Parser) ParseHeader(ctx context.Context, path string) ([]quantity.LayerMetadata, error) {
	md, err := p.metadata(path)
	if err != nil {
		p.logError(path, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		p.logError(path, err)
		return nil, err
	}
	defer f.Close()

	lm, err := ReadHeader(f, filepath.Base(path), md)
	if err != nil {
		p.logError(path, err)
		return nil, err
	}
	return lm, nil
}

// metadata returns the catalog metadata
// of an output file.
func (p *Parser) metadata(path string) (output.Metadata, error) {
	name := filepath.Base(path)
	ft, err := p.types.ResolveType(name)
	if err != nil {
		return output.Metadata{}, err
	}
	p.logger.Debug("output file type resolved", zap.String("file", name), zap.String("type", ft))

	md, err := output.Get(ft)
	if err != nil {
		return output.Metadata{}, err
	}
	return md, nil
}

func (p *Parser) logError(path string, err error) {
	var de *DataError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		p.logger.Debug("parsing canceled", zap.String("file", path))
	case errors.As(err, &de):
		p.logger.Warn("malformed output file",
			zap.String("file", path),
			zap.Int("line", de.Line),
			zap.String("problem", de.Msg),
		)
	default:
		p.logger.Error("failed to parse output file", zap.String("file", path), zap.Error(err))
	}
}

// ParseAll reads a set of output files concurrently.
// Use cpu to define the number of files
// read at the same time.
// The default (zero) uses all available CPU.
//
// The quantities are returned in the order of the paths.
// The first error found stops the remaining reads.
func (p *Parser) ParseAll(ctx context.Context, paths []string, cpu int) ([]*quantity.Quantity, error) {
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	qs := make([]*quantity.Quantity, len(paths))
	jobs := make(chan int, cpu*2)

	var wg sync.WaitGroup
	var once sync.Once
	var first error
	for range cpu {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				q, err := p.Parse(ctx, paths[i])
				if err != nil {
					once.Do(func() {
						first = err
						cancel()
					})
					continue
				}
				qs[i] = q
			}
		}()
	}

	for i := range paths {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if first != nil {
		return nil, first
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return qs, nil
}
