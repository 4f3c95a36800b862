// Package options contains the program options.
package options

// Direction of a conversion, named after the output format.
type Direction string

const (
	// ToBin converts a CPR container into a raw BIN dump.
	ToBin Direction = "bin"
	// ToCpr converts a raw BIN dump into a CPR container.
	ToCpr Direction = "cpr"
)

// Program options of the converter.
type Program struct {
	Input  string // input file to convert
	Output string // output file to write

	Direction Direction

	Verify bool // re-read the output and compare it against the input image
	Debug  bool // enable debug logging
	Quiet  bool // only log errors
}
