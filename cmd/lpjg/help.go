// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(environmentGuide)
	app.Add(outputFilesGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
A simulation writes many output files. To reduce the burden of keeping track
of them, a single project file is used to hold the reference of the output
files of a simulation. This guide explains the structure of the file, but most
of the time, the best way to edit or view this file is by using lpjg
commands.

A project file is a tab-delimited file with the following fields:

	- type  for the output file type
	- path  for the path of the output file

Here is an example file:

	# lpjg project files
	type	path
	file_anpp	out/anpp.out
	file_lai	out/lai.out
	file_mlai	out/mlai.out

Relative paths are read from the directory of the project file.

The output file type is the name of the parameter that sets the file name in
the instruction file of the simulation (for example, "file_lai"). The name of
the output file is used to resolve its type, so two file types can not use
the same file name in a project. Type 'lpjg types' to see the valid output
file types.
	`,
}

var outputFilesGuide = &command.Command{
	Usage: "output-files",
	Short: "about LPJ-GUESS output files",
	Long: `
An LPJ-GUESS output file is a text table. The first line is the header, and
each following line is a data row. Fields are separated by one or more spaces
or tabs. Here is an example of an annual LAI file:

	       Lon       Lat  Year    TeBE    TeNE   Total
	    150.25    -33.75  2000  0.2154  1.3280  1.5434
	    150.25    -33.75  2001  0.2287  1.4011  1.6298

Each output file type has an aggregation level (gridcell, stand, patch, or
individual) and a temporal resolution (annual, monthly, daily, or subdaily).
Together, they define the structural columns of the file:

	Lon, Lat, Year  always.
	Day             in daily and subdaily outputs (0 is January 1).
	stand           in stand, patch, and individual outputs (optional).
	patch           in patch and individual outputs.
	indiv, pft      in individual outputs.

Any other column is a data layer. In annual outputs, the date of a row is the
365th day of the year. Monthly outputs have one column per month, and the date
of each value is the last day of the month.

Some output file types have a fixed set of data layers, others have one layer
per plant functional type (PFT). Type 'lpjg types -v' to see the layers of
each output file type.
	`,
}

var environmentGuide = &command.Command{
	Usage: "environment",
	Short: "about environment variables",
	Long: `
Lpjg reads the following environment variables. They can be defined in a .env
file in the working directory.

	LPJG_LOG_LEVEL     the minimum logging level: "debug", "info", "warn"
	                   (the default), or "error".
	LPJG_LOG_FORMAT    the format of log messages: "console" (the default),
	                   or "json".
	LPJG_LOG_OUTPUT    the file of the log messages. By default log
	                   messages are printed in the standard error.
	LPJG_DATABASE_URL  the connection string of the PostgreSQL database used
	                   by 'lpjg import'.
	`,
}
