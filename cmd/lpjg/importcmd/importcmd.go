// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to import
// output files into a database.
package importcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/hie-dave/lpjg-gui-sub000/store"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `import [--init] [--cpu <number>]
	<project-file> [<file-type>...]`,
	Short: "import output files into a database",
	Long: `
Command import reads the output files of a project, and stores them in a
PostgreSQL database. Each output file is stored in a single transaction, as a
batch with a unique ID. The batch ID of each file is printed in the standard
output.

The connection string of the database is read from the environment variable
LPJG_DATABASE_URL (see 'lpjg help environment').

The first argument of the command is the name of the project file. By
default, all the output files of the project are imported. One or more output
file types can be given as additional arguments to import only those files.

If the flag --init is defined, the tables of the database will be created if
they do not exist.

By default, all available CPUs will be used to read the files. Set the --cpu
flag to use a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var initFlag bool
var numCPU int

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&initFlag, "init", false, "")
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	dsn := os.Getenv(store.DSNEnv)
	if dsn == "" {
		return fmt.Errorf("environment variable %s undefined", store.DSNEnv)
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
	qs, err := p.Quantities(ctx, prs, numCPU, types...)
	if err != nil {
		return err
	}

	db, err := store.Open(ctx, dsn, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if initFlag {
		if err := db.Init(ctx); err != nil {
			return err
		}
	}

	for i, q := range qs {
		batch, n, err := db.Import(ctx, p.Path(types[i]), q)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%d\n", types[i], batch, n)
	}
	return nil
}
