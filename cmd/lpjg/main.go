// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Lpjg is a tool to inspect and convert
// LPJ-GUESS output files.
package main

import (
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/add"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/exportcmd"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/header"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/importcmd"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/pixels"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/plotcmd"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/prj"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/summary"
	"github.com/hie-dave/lpjg-gui-sub000/cmd/lpjg/types"
	"github.com/joho/godotenv"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "lpjg <command> [<argument>...]",
	Short: "a tool to inspect LPJ-GUESS output files",
}

func init() {
	app.Add(add.Command)
	app.Add(exportcmd.Command)
	app.Add(header.Command)
	app.Add(importcmd.Command)
	app.Add(pixels.Command)
	app.Add(plotcmd.Command)
	app.Add(prj.Command)
	app.Add(summary.Command)
	app.Add(types.Command)
}

func main() {
	// an .env file is optional
	godotenv.Load()

	app.Main()
}
