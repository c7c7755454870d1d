//go:build linux

package view

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/ecscan/errors"
)

// Physical maps a physical address range through a memory device such as
// /dev/mem. Reads copy out of the mapping so each one touches the device.
type Physical struct {
	mapping []byte
	window  []byte
	address uint32
}

// OpenPhysical maps size bytes at the physical address. The mapping is
// page aligned internally; offsets passed to Read are relative to address.
func OpenPhysical(path string, address, size uint32) (*Physical, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.New(errors.PhaseMap, errors.KindUnsupported).
			Path(path).
			Cause(err).
			Detail("open memory device").
			Build()
	}
	defer unix.Close(fd)

	pageMask := uint64(unix.Getpagesize() - 1)
	base := uint64(address) &^ pageMask
	delta := uint64(address) - base
	length := delta + uint64(size)

	mapping, err := unix.Mmap(fd, int64(base), int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.New(errors.PhaseMap, errors.KindUnsupported).
			Path(path).
			Value(address).
			Cause(err).
			Detail("map 0x%X bytes at 0x%08X", size, address).
			Build()
	}

	Logger().Debug("physical range mapped",
		zap.String("path", path),
		zap.Uint32("address", address),
		zap.Uint32("size", size),
		zap.Uint64("page", base))

	return &Physical{
		mapping: mapping,
		window:  mapping[delta:length:length],
		address: address,
	}, nil
}

// Read copies bytes out of the mapped window.
func (p *Physical) Read(offset uint32, length uint32) ([]byte, error) {
	if err := checkRange(offset, length, p.Size()); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, p.window[offset:offset+length])
	return out, nil
}

func (p *Physical) Size() uint32 {
	return uint32(len(p.window))
}

// Address is the physical address of offset 0.
func (p *Physical) Address() uint32 {
	return p.address
}

// Close unmaps the range.
func (p *Physical) Close() error {
	if p.mapping == nil {
		return nil
	}
	err := unix.Munmap(p.mapping)
	p.mapping, p.window = nil, nil
	return err
}
