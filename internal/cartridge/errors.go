package cartridge

import (
	"errors"
	"fmt"
)

// Format errors returned by the codecs. All of them are terminal: a failed
// conversion produces no output. Use errors.Is to match the kind.
var (
	// ErrTruncated indicates the buffer ended before the structure being
	// read was complete.
	ErrTruncated = errors.New("truncated input")

	// ErrBadMagic indicates the container does not start with "RIFF".
	ErrBadMagic = errors.New("missing RIFF magic")

	// ErrBadFormTag indicates the container form tag is not "AMS!".
	ErrBadFormTag = errors.New("missing AMS! form tag")

	// ErrSizeMismatch indicates the declared container size disagrees with
	// the actual buffer length.
	ErrSizeMismatch = errors.New("container size field mismatch")

	// ErrBadChunkID indicates a chunk id that is not "cb" followed by two
	// decimal digits.
	ErrBadChunkID = errors.New("invalid chunk id")

	// ErrChunkTooLarge indicates a declared chunk length above BlockSize.
	ErrChunkTooLarge = errors.New("chunk length exceeds block size")

	// ErrBlockCountOutOfRange indicates a block count outside [1, 32].
	ErrBlockCountOutOfRange = errors.New("block count out of range")

	// ErrSizeOutOfRange indicates a BIN input that is empty or above 512KB.
	ErrSizeOutOfRange = errors.New("ROM size out of range")
)

func errBlockCount(count int) error {
	return fmt.Errorf("%w: %d blocks, expected 1 to %d", ErrBlockCountOutOfRange, count, MaxBlocks)
}

func errBlockSize(index, size int) error {
	return fmt.Errorf("block %d: %w: %d bytes, block size is %d",
		index, ErrChunkTooLarge, size, BlockSize)
}
