// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add output files
// to a project.
package add

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/parser"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "add [--type <file-type>] <project-file> <output-file>...",
	Short: "add output files to a project",
	Long: `
Command add adds the path of one or more output files to a project.

The first argument of the command is the name of the project file. If no
project exists, a new project will be created.

The following arguments are the paths of the output files. If there is a file
already defined in the project for the same output file type, its path will
be replaced by the path of the added file. The header of each file is read to
check that the file is a valid output file.

By default, the output file type is deduced from the name of the file, using
the default names of LPJ-GUESS outputs (for example, "lai.out" is the file of
the "file_lai" type). Use the flag --type to set the output file type
explicitly; in that case only one output file can be added.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting output file")
	}
	if typeFlag != "" && len(args) > 2 {
		return c.UsageError("flag --type: expecting a single output file")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	for _, path := range args[1:] {
		ft := typeFlag
		if ft == "" {
			ft, err = defaultType(path)
			if err != nil {
				return err
			}
		}
		if err := checkHeader(ft, path); err != nil {
			return err
		}
		if _, err := p.Add(ft, path); err != nil {
			return fmt.Errorf("output file %q: %v", path, err)
		}
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p = project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// defaultType returns the output file type
// with the default filename of the given path.
func defaultType(path string) (string, error) {
	name := filepath.Base(path)
	for _, ft := range output.FileTypes() {
		if strings.TrimPrefix(ft, "file_")+".out" == name {
			return ft, nil
		}
	}
	return "", fmt.Errorf("output file %q: unknown default name: use flag --type", path)
}

func checkHeader(fileType, path string) error {
	md, err := output.Get(fileType)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := parser.ReadHeader(f, filepath.Base(path), md); err != nil {
		return err
	}
	return nil
}
