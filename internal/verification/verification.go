// Package verification verifies that the written output file recreates the input image.
package verification

import (
	"bytes"
	"fmt"
	"os"

	"github.com/retroenv/cprgoconv/internal/cartridge"
	"github.com/retroenv/cprgoconv/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput re-reads the written output file, decodes it with the
// matching codec and compares the resulting block sequence against the
// image that was encoded.
func VerifyOutput(logger *log.Logger, opts options.Program, img *cartridge.Image) error {
	data, err := os.ReadFile(opts.Output)
	if err != nil {
		return fmt.Errorf("reading output file for comparison: %w", err)
	}

	var decoded *cartridge.Image
	switch opts.Direction {
	case options.ToBin:
		decoded, err = cartridge.DecodeBIN(data)
	case options.ToCpr:
		if want := 12 + img.BlockCount()*(8+cartridge.BlockSize); len(data) != want {
			return fmt.Errorf("container size mismatch: %d bytes written, expected %d", len(data), want)
		}
		decoded, err = cartridge.DecodeCPR(data)
	default:
		return fmt.Errorf("unknown conversion direction %q", opts.Direction)
	}
	if err != nil {
		return fmt.Errorf("decoding output file: %w", err)
	}

	if err := compareImages(logger, img, decoded); err != nil {
		return err
	}

	logger.Debug("Output verified",
		log.String("file", opts.Output),
		log.Int("blocks", decoded.BlockCount()))
	return nil
}

// compareImages checks that both images carry identical block sequences.
func compareImages(logger *log.Logger, input, output *cartridge.Image) error {
	if input.BlockCount() != output.BlockCount() {
		return fmt.Errorf("block count mismatch: %d != %d", input.BlockCount(), output.BlockCount())
	}

	var mismatches int
	for i := range input.BlockCount() {
		if !bytes.Equal(input.Block(i), output.Block(i)) {
			logger.Error("Block content mismatch", log.Int("block", i))
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d blocks differ between input and output", mismatches)
	}
	return nil
}
