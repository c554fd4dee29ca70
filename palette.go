/*
Package palette converts color palettes between the Adobe Color Table
binary format and the GIMP palette text format, and maintains an optional
library of named palettes.
*/
package palette

import "log"

type Converter struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
