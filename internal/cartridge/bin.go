package cartridge

import "fmt"

// DecodeBIN splits a raw ROM dump into an image. The final block is
// zero-padded to full block size if the input length is not a multiple
// of 16KB.
func DecodeBIN(data []byte) (*Image, error) {
	if len(data) < 1 || len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes, expected 1 to %d",
			ErrSizeOutOfRange, len(data), MaxImageSize)
	}

	count := (len(data) + BlockSize - 1) / BlockSize
	blocks := make([][]byte, 0, count)
	for offset := 0; offset < len(data); offset += BlockSize {
		block := make([]byte, BlockSize)
		copy(block, data[offset:min(offset+BlockSize, len(data))])
		blocks = append(blocks, block)
	}
	return &Image{blocks: blocks}, nil
}

// EncodeBIN concatenates all blocks into a raw ROM dump. The output length
// is always a multiple of the block size, trailing padding of the last
// block is kept.
func EncodeBIN(img *Image) []byte {
	buf := make([]byte, 0, img.BlockCount()*BlockSize)
	for i := range img.BlockCount() {
		buf = append(buf, img.Block(i)...)
	}
	return buf
}
