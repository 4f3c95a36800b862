// Package detector handles input format detection.
package detector

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/retroenv/cprgoconv/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format of an input file.
type Format string

const (
	// CPR is the RIFF based cartridge container format.
	CPR Format = "cpr"
	// BIN is a flat ROM dump without any framing.
	BIN Format = "bin"
)

// Detector detects the format of input files from their content and
// file extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the format of the input data. The conversion direction
// passed on the command line stays authoritative, the detected format is
// used for logging and to warn about a likely direction mix-up.
func (d *Detector) Detect(opts options.Program, data []byte) Format {
	format := d.detectFromContent(data)
	if format == "" {
		format = d.detectFromFile(opts.Input)
		d.logger.Debug("Detected input format from file name",
			log.String("format", string(format)),
			log.String("file", opts.Input))
	}

	if expected := expectedInput(opts.Direction); format != expected {
		d.logger.Warn("Input does not look like the expected source format",
			log.String("detected", string(format)),
			log.String("expected", string(expected)))
	}
	return format
}

// detectFromContent checks for the CPR container magic bytes.
func (d *Detector) detectFromContent(data []byte) Format {
	if len(data) < 12 {
		return ""
	}
	if bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("AMS!")) {
		return CPR
	}
	return BIN
}

// detectFromFile determines the format based on the file extension.
func (d *Detector) detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".cpr":
		return CPR
	default:
		// raw dumps use .bin, .rom or no convention at all
		return BIN
	}
}

// expectedInput returns the source format a conversion direction reads.
func expectedInput(direction options.Direction) Format {
	if direction == options.ToBin {
		return CPR
	}
	return BIN
}
