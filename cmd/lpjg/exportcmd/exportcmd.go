// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package exportcmd implements a command to convert
// an output file into a tabular format.
package exportcmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hie-dave/lpjg-gui-sub000/export"
	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `export [--format <format>] [-o|--output <file>]
	<project-file> <file-type>`,
	Short: "convert an output file",
	Long: `
Command export reads an output file of a project and writes it in a different
tabular format.

The first argument of the command is the name of the project file. The second
argument is the output file type to be exported.

The flag --format defines the output format. Valid values are:

	long   a comma separated file with one row per value, with the
	       columns layer, units, date, lon, lat, stand, patch,
	       individual, pft, and value. It is the default.
	table  a comma separated file with one row per location and date,
	       and one column per data layer.
	arrow  an Apache Arrow IPC stream with the same columns of the
	       table format.

By default, the result is printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var format string
var outFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&format, "format", "long", "")
	c.Flags().StringVar(&outFile, "output", "", "")
	c.Flags().StringVar(&outFile, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting output file type")
	}

	format = strings.ToLower(format)
	switch format {
	case "long", "table", "arrow":
	default:
		return c.UsageError(fmt.Sprintf("flag --format: unknown value %q", format))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	logger := logging.Must(logging.FromEnv())
	defer logger.Sync()

	prs, err := p.Parser(logger)
	if err != nil {
		return err
	}
	q, err := p.Quantity(context.Background(), prs, args[1])
	if err != nil {
		return err
	}

	var w io.Writer = c.Stdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := write(bw, q); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

func write(w io.Writer, q *quantity.Quantity) error {
	switch format {
	case "table":
		return export.NewTable(q).WriteTable(w)
	case "arrow":
		return export.NewTable(q).WriteArrow(w)
	}
	return export.WriteRecords(w, q)
}
