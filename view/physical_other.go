//go:build !linux

package view

import "github.com/wippyai/ecscan/errors"

// Physical is only available on Linux.
type Physical struct{}

// OpenPhysical always fails on this platform.
func OpenPhysical(path string, address, size uint32) (*Physical, error) {
	return nil, errors.Unsupported(errors.PhaseMap, "physical memory mapping requires linux")
}

func (p *Physical) Read(offset uint32, length uint32) ([]byte, error) {
	return nil, errors.OutOfRange(errors.PhaseRead, nil, offset, length, 0)
}

func (p *Physical) Size() uint32 { return 0 }

func (p *Physical) Address() uint32 { return 0 }

func (p *Physical) Close() error { return nil }
