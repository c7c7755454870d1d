package ecscan

import (
	"github.com/wippyai/ecscan/asl"
	"github.com/wippyai/ecscan/layout"
	"github.com/wippyai/ecscan/view"
)

// Compile extracts the region declared in src and compiles the field list
// that follows it.
func Compile(src string, opts ...layout.Option) (asl.Region, *layout.Table, error) {
	region, rest, err := asl.ExtractRegion(src)
	if err != nil {
		return asl.Region{}, nil, err
	}

	s := asl.NewScanner(rest)
	tbl, err := layout.Compile(region, s.All(), opts...)
	if err != nil {
		return asl.Region{}, nil, err
	}
	if err := s.Err(); err != nil {
		return asl.Region{}, nil, err
	}
	return region, tbl, nil
}

// ReadAll reads every field of tbl from mem in declaration order.
func ReadAll(tbl *layout.Table, mem view.Memory) []layout.Value {
	return layout.ReadAll(tbl, mem)
}

// ReadOne reads the named field. It reports false for an unknown name.
func ReadOne(tbl *layout.Table, mem view.Memory, name string) (layout.Value, bool) {
	return layout.ReadOne(tbl, mem, name)
}
