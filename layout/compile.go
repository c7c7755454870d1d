package layout

import (
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/ecscan/asl"
	"github.com/wippyai/ecscan/errors"
)

// maxWordBits is the width of the word a mask is expressed in.
const maxWordBits = 32

// Option configures Compile.
type Option func(*compiler)

// WithStrict makes a repeated field name a compile error instead of a warning.
func WithStrict() Option {
	return func(c *compiler) { c.strict = true }
}

// WithLogger overrides the package logger for one Compile call.
func WithLogger(l *zap.Logger) Option {
	return func(c *compiler) { c.log = l }
}

type compiler struct {
	log    *zap.Logger
	table  *Table
	cursor uint64
	strict bool
}

// Compile applies instructions in order to a bit cursor that starts at zero
// and returns the resulting table. Fields are not checked against the region
// size; a field past the end fails when it is read.
func Compile(region asl.Region, instructions iter.Seq[asl.Instruction], opts ...Option) (*Table, error) {
	c := &compiler{
		log: Logger(),
		table: &Table{
			Region: region,
			index:  make(map[string]int),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	for ins := range instructions {
		if err := c.apply(ins); err != nil {
			return nil, err
		}
	}

	c.log.Debug("layout compiled",
		zap.String("region", region.Name),
		zap.Int("fields", len(c.table.Fields)),
		zap.Uint64("bits", c.cursor))
	return c.table, nil
}

func (c *compiler) apply(ins asl.Instruction) error {
	switch ins.Op {
	case asl.OpOffset:
		c.cursor = uint64(ins.Offset) * 8
	case asl.OpPadding:
		c.cursor += uint64(ins.Width)
	case asl.OpField:
		return c.field(ins.Name, ins.Width)
	default:
		return errors.New(errors.PhaseCompile, errors.KindMalformedInput).
			Value(ins.Op).
			Detail("unknown instruction %d", ins.Op).
			Build()
	}
	return nil
}

func (c *compiler) field(name string, width uint32) error {
	byteOffset := c.cursor / 8
	if byteOffset > math.MaxUint32 {
		return errors.New(errors.PhaseCompile, errors.KindMalformedInput).
			Path(name).
			Detail("field starts past 4 GiB (bit %d)", c.cursor).
			Build()
	}

	lo := c.cursor - byteOffset*8
	hi := lo + uint64(width)
	byteLength := (hi + 7) / 8
	if hi > maxWordBits {
		return errors.UnsupportedWidth(name, width, uint32(min(byteLength, math.MaxUint32)))
	}

	f := Field{
		Name:       name,
		Mask:       uint32((uint64(1)<<hi - 1) &^ (uint64(1)<<lo - 1)),
		ByteOffset: uint32(byteOffset),
		ByteLength: uint32(byteLength),
		BitOffset:  c.cursor,
		Width:      width,
	}

	if prev, dup := c.table.index[name]; dup {
		if c.strict {
			return errors.DuplicateField(name, prev, len(c.table.Fields))
		}
		c.log.Warn("duplicate field name, later declaration wins",
			zap.String("field", name),
			zap.Int("first", prev),
			zap.Int("second", len(c.table.Fields)))
		c.table.Duplicates = append(c.table.Duplicates, name)
	}

	c.table.Fields = append(c.table.Fields, f)
	c.table.index[name] = len(c.table.Fields) - 1
	c.cursor += uint64(width)
	return nil
}
