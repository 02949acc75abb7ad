// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summary implements a command to print
// summary statistics of the output files in a project.
package summary

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/hie-dave/lpjg-gui-sub000/export"
	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `summary [--annual] [--cpu <number>]
	<project-file> [<file-type>...]`,
	Short: "print summary statistics of output files",
	Long: `
Command summary reads the output files of a project, and prints summary
statistics of each data layer: number of values, minimum, maximum, mean,
standard deviation, median, and the date of the first and last values.

The first argument of the command is the name of the project file.

By default, all the output files of the project are read. One or more output
file types can be given as additional arguments to read only those files.

If the flag --annual is defined, the mean of each year will be printed
instead.

By default, all available CPUs will be used to read the files. Set the --cpu
flag to use a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var annual bool
var numCPU int

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&annual, "annual", false, "")
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
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

	qs, err := p.Quantities(context.Background(), prs, numCPU, args[1:]...)
	if err != nil {
		return err
	}

	if annual {
		fmt.Fprintf(c.Stdout(), "quantity\tlayer\tunits\tyear\tmean\n")
		for _, q := range qs {
			printAnnual(c.Stdout(), q)
		}
		return nil
	}

	fmt.Fprintf(c.Stdout(), "quantity\tlayer\tunits\tn\tmin\tmax\tmean\tsd\tmedian\tfirst\tlast\n")
	for _, q := range qs {
		for i := range q.Layers {
			l := &q.Layers[i]
			s := l.Summary()
			if s.N == 0 {
				fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\t0\t--\t--\t--\t--\t--\t--\t--\n", q.Name, l.Name, l.Units)
				continue
			}
			fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%s\t%s\n", q.Name, l.Name, l.Units, s.N, s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.First.Format(export.DateFormat), s.Last.Format(export.DateFormat))
		}
	}
	return nil
}

func printAnnual(w io.Writer, q *quantity.Quantity) {
	for i := range q.Layers {
		l := &q.Layers[i]
		a := l.Annual()
		years := make([]int, 0, len(a))
		for y := range a {
			years = append(years, y)
		}
		slices.Sort(years)
		for _, y := range years {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.6f\n", q.Name, l.Name, l.Units, y, a[y])
		}
	}
}
