package view

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ecscan/errors"
)

// Wasm adapts a wazero guest memory holding an emulated controller's RAM.
// The window starts at Base in guest memory.
type Wasm struct {
	Mem  api.Memory
	Base uint32
	Len  uint32
}

// WrapWasm returns a Memory over size bytes of guest memory starting at base.
// A zero size extends the window to the end of guest memory.
func WrapWasm(mem api.Memory, base, size uint32) *Wasm {
	if mem == nil {
		return nil
	}
	return &Wasm{Mem: mem, Base: base, Len: size}
}

// Read reads bytes from guest memory.
func (w *Wasm) Read(offset uint32, length uint32) ([]byte, error) {
	if err := checkRange(offset, length, w.Size()); err != nil {
		return nil, err
	}
	data, ok := w.Mem.Read(w.Base+offset, length)
	if !ok {
		return nil, errors.OutOfRange(errors.PhaseRead, nil, offset, length, w.Size())
	}
	return data, nil
}

// Size is the declared window, clipped to the current guest memory size.
func (w *Wasm) Size() uint32 {
	total := w.Mem.Size()
	if w.Base >= total {
		return 0
	}
	avail := total - w.Base
	if w.Len == 0 || w.Len > avail {
		return avail
	}
	return w.Len
}
