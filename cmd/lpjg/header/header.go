// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package header implements a command to print
// the data layers of the output files in a project.
package header

import (
	"context"
	"fmt"

	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "header <project-file> [<file-type>...]",
	Short: "print the data layers of output files",
	Long: `
Command header reads the header of the output files of a project, and prints
the data layers of each file, with its units. Only the header of the files is
read.

The first argument of the command is the name of the project file.

By default, all the output files of the project are read. One or more output
file types can be given as additional arguments to read only those files.
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

	logger := logging.Must(logging.FromEnv())
	defer logger.Sync()

	prs, err := p.Parser(logger)
	if err != nil {
		return err
	}

	types := args[1:]
	if len(types) == 0 {
		types = p.Types()
	}

	ctx := context.Background()
	for _, ft := range types {
		lm, err := p.Layers(ctx, prs, ft)
		if err != nil {
			return err
		}
		for _, l := range lm {
			fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\n", ft, l.Name, l.Units)
		}
	}
	return nil
}
