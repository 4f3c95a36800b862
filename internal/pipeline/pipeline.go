// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/cprgoconv/internal/cartridge"
	"github.com/retroenv/cprgoconv/internal/detector"
	"github.com/retroenv/cprgoconv/internal/loader"
	"github.com/retroenv/cprgoconv/internal/options"
	"github.com/retroenv/cprgoconv/internal/verification"
	"github.com/retroenv/cprgoconv/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	writer   *writer.Writer
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		writer:   writer.New(),
	}
}

// Execute runs the complete conversion pipeline: load the input file,
// decode it into the block image, encode the target representation and
// write it atomically.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	data, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	format := p.detector.Detect(opts, data)
	p.logger.Info("Converting cartridge",
		log.String("file", opts.Input),
		log.String("input_format", string(format)),
		log.String("output_format", string(opts.Direction)))

	if err := ctx.Err(); err != nil {
		return err
	}

	img, output, err := convert(opts.Direction, data)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.writer.WriteFile(opts.Output, output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, opts, img); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	p.logger.Info("Conversion finished",
		log.String("file", opts.Output),
		log.Int("blocks", img.BlockCount()),
		log.Int("bytes", len(output)))
	return nil
}

// convert decodes the input into the intermediate image and encodes the
// requested target representation.
func convert(direction options.Direction, data []byte) (*cartridge.Image, []byte, error) {
	switch direction {
	case options.ToBin:
		img, err := cartridge.DecodeCPR(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding CPR container: %w", err)
		}
		return img, cartridge.EncodeBIN(img), nil

	case options.ToCpr:
		img, err := cartridge.DecodeBIN(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding BIN dump: %w", err)
		}
		output, err := cartridge.EncodeCPR(img)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding CPR container: %w", err)
		}
		return img, output, nil

	default:
		return nil, nil, fmt.Errorf("unknown conversion direction %q", direction)
	}
}
