package cartridge

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeBINPartialBlock(t *testing.T) {
	data := make([]byte, 20000)
	for i := range data {
		data[i] = byte(i)
	}

	img, err := DecodeBIN(data)
	assert.NoError(t, err)
	assert.Equal(t, 2, img.BlockCount())

	assert.True(t, bytes.Equal(data[:BlockSize], img.Block(0)))
	assert.True(t, bytes.Equal(data[BlockSize:], img.Block(1)[:20000-BlockSize]))

	for _, b := range img.Block(1)[20000-BlockSize:] {
		if b != 0 {
			t.Fatal("expected zero padding on final block tail")
		}
	}
}

func TestDecodeBINBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		blockCount int
		want       error
	}{
		{name: "single byte", size: 1, blockCount: 1},
		{name: "exact block", size: BlockSize, blockCount: 1},
		{name: "block plus one", size: BlockSize + 1, blockCount: 2},
		{name: "maximum size", size: MaxImageSize, blockCount: MaxBlocks},
		{name: "empty", size: 0, want: ErrSizeOutOfRange},
		{name: "over maximum", size: MaxImageSize + 1, want: ErrSizeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeBIN(make([]byte, tt.size))
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.blockCount, img.BlockCount())
		})
	}
}

func TestBINRoundTrip(t *testing.T) {
	for _, size := range []int{1, 100, BlockSize, BlockSize + 1, 20000, MaxImageSize} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 7)
		}

		img, err := DecodeBIN(data)
		assert.NoError(t, err)

		// the round trip pads the input to the next block boundary
		out := EncodeBIN(img)
		assert.Equal(t, img.BlockCount()*BlockSize, len(out))
		assert.True(t, bytes.Equal(data, out[:size]))

		for _, b := range out[size:] {
			if b != 0 {
				t.Fatal("expected zero padding after original data")
			}
		}
	}
}

func TestBINToCPRToBIN(t *testing.T) {
	data := make([]byte, 3*BlockSize)
	for i := range data {
		data[i] = byte(i % 251)
	}

	img, err := DecodeBIN(data)
	assert.NoError(t, err)

	cpr, err := EncodeCPR(img)
	assert.NoError(t, err)

	decoded, err := DecodeCPR(cpr)
	assert.NoError(t, err)

	assert.True(t, bytes.Equal(data, EncodeBIN(decoded)))
}

func TestNewImageValidation(t *testing.T) {
	_, err := NewImage(nil)
	assert.True(t, errors.Is(err, ErrBlockCountOutOfRange))

	_, err = NewImage(make([][]byte, MaxBlocks+1))
	assert.True(t, errors.Is(err, ErrBlockCountOutOfRange))

	_, err = NewImage([][]byte{make([]byte, BlockSize+1)})
	assert.True(t, errors.Is(err, ErrChunkTooLarge))

	img, err := NewImage([][]byte{{0x01, 0x02}})
	assert.NoError(t, err)
	assert.Equal(t, BlockSize, len(img.Block(0)))
	assert.Equal(t, byte(0x01), img.Block(0)[0])
	assert.Equal(t, byte(0x00), img.Block(0)[2])
}
