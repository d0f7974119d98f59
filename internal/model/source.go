// Package model defines the data structures shared by the loxcheck runner.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Script describes a discovered test script.
type Script struct {
	Path        Path
	Expectation Expectation
	// Err is set when the script's expectations could not be read or parsed.
	Err error
}
