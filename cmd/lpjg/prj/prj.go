// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"os"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a project and prints the output files of the project into
the standard output. For each file it prints the output file type, the path
of the file, its aggregation level and temporal resolution, and whether the
file is missing.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	for _, ft := range p.Types() {
		md, err := output.Get(ft)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s:\n", md.LongName())
		fmt.Fprintf(c.Stdout(), "\ttype: %s\n", ft)
		fmt.Fprintf(c.Stdout(), "\tfile: %s\n", p.Path(ft))

		fi, err := os.Stat(p.FilePath(ft))
		if err != nil {
			fmt.Fprintf(c.Stdout(), "\tstatus: missing\n")
		} else {
			fmt.Fprintf(c.Stdout(), "\tsize: %d bytes\n", fi.Size())
		}
		fmt.Fprintf(c.Stdout(), "\n")
	}
	return nil
}
