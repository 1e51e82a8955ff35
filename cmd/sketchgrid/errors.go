package main

import "errors"

var (
	// ErrMissingFile indicates -file was not supplied on the command line.
	ErrMissingFile = errors.New("sketchgrid: -file is required")
	// ErrEmptyDiagram indicates the loaded file contained no lines at all,
	// so there is nothing for the parser to walk.
	ErrEmptyDiagram = errors.New("sketchgrid: input file has no lines")
)
