// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package types implements a command to print
// the known output file types.
package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `types [--level <level>] [--resolution <resolution>]
	[-v|--verbose] [<file-type>...]`,
	Short: "print the known output file types",
	Long: `
Command types prints the output file types known by lpjg.

By default, it prints the type, the aggregation level, the temporal
resolution, and the name of each output file type. If the flag --verbose, or
-v, is defined, it also prints the description and the data layers of each
type.

The flag --level limits the output to the types with the given aggregation
level. Valid values are "gridcell", "stand", "patch", and "individual".

The flag --resolution limits the output to the types with the given temporal
resolution. Valid values are "annual", "monthly", "daily", and "subdaily".

One or more arguments can be given to print only the indicated types.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool
var levelFlag string
var resFlag string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().StringVar(&levelFlag, "level", "", "")
	c.Flags().StringVar(&resFlag, "resolution", "", "")
}

func run(c *command.Command, args []string) error {
	filter := func(output.Metadata) bool { return true }
	if levelFlag != "" {
		lv, err := output.ParseLevel(levelFlag)
		if err != nil {
			return c.UsageError(fmt.Sprintf("flag --level: %v", err))
		}
		prev := filter
		filter = func(md output.Metadata) bool { return prev(md) && md.Level == lv }
	}
	if resFlag != "" {
		res, err := output.ParseResolution(resFlag)
		if err != nil {
			return c.UsageError(fmt.Sprintf("flag --resolution: %v", err))
		}
		prev := filter
		filter = func(md output.Metadata) bool { return prev(md) && md.Resolution == res }
	}

	var mds []output.Metadata
	if len(args) == 0 {
		mds = output.All()
	}
	for _, a := range args {
		md, err := output.Get(a)
		if err != nil {
			return err
		}
		mds = append(mds, md)
	}

	for _, md := range mds {
		if !filter(md) {
			continue
		}
		if verbose {
			printVerbose(c.Stdout(), md)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\t%s\n", md.FileType, md.Level, md.Resolution, md.Name)
	}
	return nil
}

func printVerbose(w io.Writer, md output.Metadata) {
	fmt.Fprintf(w, "%s:\n", md.FileType)
	fmt.Fprintf(w, "\tname: %s\n", md.LongName())
	fmt.Fprintf(w, "\tdescription: %s\n", md.Description)
	if md.Layers.Kind() == output.Dynamic {
		fmt.Fprintf(w, "\tlayers: one per PFT [%s]\n", md.Layers.Unit())
		fmt.Fprintf(w, "\n")
		return
	}

	cols := md.Layers.Columns()
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, fmt.Sprintf("%s [%s]", col.Name, col.Unit))
	}
	fmt.Fprintf(w, "\tlayers: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "\n")
}
