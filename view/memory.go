package view

import (
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/ecscan/errors"
)

// Memory is a byte-addressable window onto a region.
type Memory interface {
	// Read returns length bytes starting at offset. The slice must not be
	// retained across calls.
	Read(offset uint32, length uint32) ([]byte, error)
	// Size is the extent of the window in bytes.
	Size() uint32
}

// Bytes is a Memory over an in-memory buffer.
type Bytes []byte

// Read reads bytes from the buffer.
func (b Bytes) Read(offset uint32, length uint32) ([]byte, error) {
	if err := checkRange(offset, length, b.Size()); err != nil {
		return nil, err
	}
	end := offset + length
	return b[offset:end:end], nil
}

func (b Bytes) Size() uint32 {
	if uint64(len(b)) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(len(b))
}

// OpenFile loads a RAM snapshot from disk.
func OpenFile(path string) (Bytes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseMap, errors.KindNotFound).
			Path(path).
			Cause(err).
			Detail("read snapshot").
			Build()
	}
	Logger().Debug("snapshot loaded", zap.String("path", path), zap.Int("size", len(data)))
	return Bytes(data), nil
}

func checkRange(offset, length, size uint32) error {
	if uint64(offset)+uint64(length) > uint64(size) {
		return errors.OutOfRange(errors.PhaseRead, nil, offset, length, size)
	}
	return nil
}
