package detector

import (
	"testing"

	"github.com/retroenv/cprgoconv/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	cprHeader := append([]byte("RIFF\x04\x00\x00\x00AMS!"), make([]byte, 16)...)

	tests := []struct {
		name string
		opts options.Program
		data []byte
		want Format
	}{
		{
			name: "cpr magic bytes",
			opts: options.Program{Input: "game.dat", Direction: options.ToBin},
			data: cprHeader,
			want: CPR,
		},
		{
			name: "raw data",
			opts: options.Program{Input: "game.dat", Direction: options.ToCpr},
			data: make([]byte, 100),
			want: BIN,
		},
		{
			name: "riff without form tag",
			opts: options.Program{Input: "game.dat", Direction: options.ToCpr},
			data: []byte("RIFF\x04\x00\x00\x00WAVEdata"),
			want: BIN,
		},
		{
			name: "short input with cpr extension",
			opts: options.Program{Input: "game.cpr", Direction: options.ToBin},
			data: []byte{0x01},
			want: CPR,
		},
		{
			name: "short input with bin extension",
			opts: options.Program{Input: "game.bin", Direction: options.ToCpr},
			data: []byte{0x01},
			want: BIN,
		},
		{
			name: "mismatch against direction still returns detected format",
			opts: options.Program{Input: "game.cpr", Direction: options.ToCpr},
			data: cprHeader,
			want: CPR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(log.NewTestLogger(t))
			assert.Equal(t, tt.want, d.Detect(tt.opts, tt.data))
		})
	}
}
