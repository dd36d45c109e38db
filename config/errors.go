package config

import "fmt"

// ErrAlreadyParsed is returned when attempting to parse the
// flags of a Parser more than once
var ErrAlreadyParsed = fmt.Errorf("flags already parsed")

// ErrParseFlags is returned when the command line flags cannot
// be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// ErrReadConfigFile is returned when the configuration file
// cannot be read
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

// Error implementation of error for ErrReadConfigFile
func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read config file %s: %s", e.Path, e.Cause.Error())
}
