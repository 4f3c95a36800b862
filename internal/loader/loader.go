// Package loader handles cartridge file loading operations.
package loader

import (
	"fmt"
	"os"
)

// maxInputSize is a coarse sanity cap on input files. The codecs enforce
// the exact format limits, this only prevents reading an accidentally
// passed huge file into memory. The largest valid input is a 32 block CPR
// container of 524684 bytes.
const maxInputSize = 1 << 20

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole input file into memory. Conversion works on the
// complete buffer, the format caps total size at 512KB plus container
// overhead.
func (l *Loader) Load(filename string) ([]byte, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("accessing file %s: %w", filename, err)
	}
	if info.Size() > maxInputSize {
		return nil, fmt.Errorf("file %s is too large for a cartridge image: %d bytes", filename, info.Size())
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return data, nil
}
