// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package output

import (
	"slices"
	"time"
)

// Names of the structural columns of an output file.
const (
	LonColumn   = "Lon"
	LatColumn   = "Lat"
	YearColumn  = "Year"
	DayColumn   = "Day"
	StandColumn = "stand"
	PatchColumn = "patch"
	IndivColumn = "indiv"
	PFTColumn   = "pft"
)

// Aliases for the identifier columns.
// LPJ-GUESS writes them in lowercase,
// but some post-processing tools
// rename them.
var aliases = map[string][]string{
	StandColumn: {StandColumn, "Stand"},
	PatchColumn: {PatchColumn, "Patch"},
	IndivColumn: {IndivColumn, "Individual"},
	PFTColumn:   {PFTColumn, "PFT"},
}

// Aliases returns the accepted spellings
// of a structural column.
func Aliases(column string) []string {
	if a, ok := aliases[column]; ok {
		return a
	}
	return []string{column}
}

// TotalColumn is the name of the annual total column
// of the monthly outputs.
const TotalColumn = "Total"

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Months returns the names of the month columns
// of a monthly output,
// in calendar order.
func Months() []string {
	return slices.Clone(monthNames)
}

// Month returns the month of a month column name
// (e.g. "Feb").
func Month(name string) (time.Month, bool) {
	i := slices.Index(monthNames, name)
	if i < 0 {
		return 0, false
	}
	return time.Month(i + 1), true
}

// StructuralColumns returns the names
// of the columns that are not data layers
// for a given aggregation level and temporal resolution.
func StructuralColumns(level Level, res Resolution) []string {
	cols := []string{LonColumn, LatColumn, YearColumn}

	// some annual outputs include a day column
	if res != Monthly {
		cols = append(cols, DayColumn)
	}

	if level >= Stand {
		cols = append(cols, aliases[StandColumn]...)
	}
	if level >= Patch {
		cols = append(cols, aliases[PatchColumn]...)
	}
	if level == Individual {
		cols = append(cols, aliases[IndivColumn]...)
		cols = append(cols, aliases[PFTColumn]...)
	}
	if res == Monthly {
		cols = append(cols, monthNames...)
	}
	return cols
}

// IsStructural returns true if the column
// is a structural column
// for the given aggregation level and temporal resolution.
func IsStructural(column string, level Level, res Resolution) bool {
	return slices.Contains(StructuralColumns(level, res), column)
}
