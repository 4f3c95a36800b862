// Package cartridge implements the CPR container and raw BIN codecs for
// GX4000-class cartridge ROM images.
package cartridge

const (
	// BlockSize is the fixed size of a single ROM block in bytes.
	BlockSize = 16384

	// MaxBlocks is the maximum number of blocks a cartridge can hold (512KB).
	MaxBlocks = 32

	// MaxImageSize is the maximum raw ROM size in bytes.
	MaxImageSize = BlockSize * MaxBlocks

	containerHeaderSize = 12
	chunkHeaderSize     = 8
)

var (
	riffTag = []byte("RIFF")
	formTag = []byte("AMS!")
)

// Image is an ordered sequence of fixed-size ROM blocks, the intermediate
// representation between the CPR and BIN formats. It is not mutated after
// construction.
type Image struct {
	blocks [][]byte
}

// NewImage creates an image from the given blocks. Blocks shorter than
// BlockSize are zero-padded on the tail, longer blocks are rejected.
func NewImage(blocks [][]byte) (*Image, error) {
	if len(blocks) < 1 || len(blocks) > MaxBlocks {
		return nil, errBlockCount(len(blocks))
	}

	img := &Image{
		blocks: make([][]byte, 0, len(blocks)),
	}
	for i, data := range blocks {
		if len(data) > BlockSize {
			return nil, errBlockSize(i, len(data))
		}
		block := make([]byte, BlockSize)
		copy(block, data)
		img.blocks = append(img.blocks, block)
	}
	return img, nil
}

// BlockCount returns the number of blocks in the image.
func (img *Image) BlockCount() int {
	return len(img.blocks)
}

// Block returns the full 16KB data of block index.
func (img *Image) Block(index int) []byte {
	return img.blocks[index]
}
