package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DecodeCPR parses a CPR container buffer into an image.
//
// The container layout is a RIFF header ("RIFF", little-endian total size,
// "AMS!") followed by one chunk per block. Every chunk occupies a full
// 16KB data slot on disk regardless of its declared length, which only
// records how many of those bytes were real data at encode time.
func DecodeCPR(data []byte) (*Image, error) {
	if len(data) < containerHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, container header needs %d",
			ErrTruncated, len(data), containerHeaderSize)
	}
	if !bytes.Equal(data[0:4], riffTag) {
		return nil, fmt.Errorf("%w: got %q", ErrBadMagic, data[0:4])
	}
	if !bytes.Equal(data[8:12], formTag) {
		return nil, fmt.Errorf("%w: got %q", ErrBadFormTag, data[8:12])
	}

	// The size field covers everything after itself, so the form tag plus
	// all chunks. A wrong value means the writer was broken and the chunk
	// walk can not be trusted, so this is a hard failure.
	declaredSize := binary.LittleEndian.Uint32(data[4:8])
	if int(declaredSize) != len(data)-8 {
		return nil, fmt.Errorf("%w: header declares %d bytes, file has %d",
			ErrSizeMismatch, declaredSize, len(data)-8)
	}

	var blocks [][]byte
	for offset := containerHeaderSize; offset < len(data); {
		block, err := decodeChunk(data, offset, len(blocks))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		offset += chunkHeaderSize + BlockSize
	}

	if len(blocks) < 1 || len(blocks) > MaxBlocks {
		return nil, errBlockCount(len(blocks))
	}
	return &Image{blocks: blocks}, nil
}

// decodeChunk reads the chunk starting at offset and returns its full
// 16KB data slot.
func decodeChunk(data []byte, offset, index int) ([]byte, error) {
	if len(data)-offset < chunkHeaderSize {
		return nil, fmt.Errorf("chunk %d: %w: %d bytes left, chunk header needs %d",
			index, ErrTruncated, len(data)-offset, chunkHeaderSize)
	}

	id := data[offset : offset+4]
	if !validChunkID(id) {
		return nil, fmt.Errorf("chunk %d: %w: got %q", index, ErrBadChunkID, id)
	}

	length := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
	if length > BlockSize {
		return nil, fmt.Errorf("chunk %d: %w: %d bytes declared, block size is %d",
			index, ErrChunkTooLarge, length, BlockSize)
	}

	// A declared length below 16KB is informational only, the slot on disk
	// is always full size with zero padding on the tail.
	slot := data[offset+chunkHeaderSize:]
	if len(slot) < BlockSize {
		return nil, fmt.Errorf("chunk %d: %w: %d data bytes left, slot needs %d",
			index, ErrTruncated, len(slot), BlockSize)
	}

	block := make([]byte, BlockSize)
	copy(block, slot[:BlockSize])
	return block, nil
}

// validChunkID reports whether id is "cb" followed by two ASCII digits.
func validChunkID(id []byte) bool {
	if id[0] != 'c' || id[1] != 'b' {
		return false
	}
	return id[2] >= '0' && id[2] <= '9' && id[3] >= '0' && id[3] <= '9'
}

// EncodeCPR serializes an image into a CPR container buffer. The output is
// deterministic: 12 header bytes plus 16392 bytes per block.
func EncodeCPR(img *Image) ([]byte, error) {
	count := img.BlockCount()
	if count < 1 || count > MaxBlocks {
		return nil, errBlockCount(count)
	}

	chunkBytes := count * (chunkHeaderSize + BlockSize)
	buf := make([]byte, 0, containerHeaderSize+chunkBytes)

	buf = append(buf, riffTag...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(formTag)+chunkBytes))
	buf = append(buf, formTag...)

	for i := range count {
		buf = fmt.Appendf(buf, "cb%02d", i)
		buf = binary.LittleEndian.AppendUint32(buf, BlockSize)
		buf = append(buf, img.Block(i)...)
	}
	return buf, nil
}
