package layout

import (
	"fmt"
	"math/bits"

	"github.com/wippyai/ecscan/asl"
)

// Field locates one named field inside the region.
type Field struct {
	Name       string
	Mask       uint32
	ByteOffset uint32
	ByteLength uint32

	// BitOffset is the absolute bit position of the field in the region.
	BitOffset uint64
	Width     uint32
}

// Shift is the right shift that aligns the masked word to bit 0.
func (f Field) Shift() int {
	return bits.TrailingZeros32(f.Mask)
}

// Extract isolates the field from a little-endian word read at ByteOffset.
func (f Field) Extract(word uint32) uint32 {
	return (word & f.Mask) >> f.Shift()
}

func (f Field) String() string {
	return fmt.Sprintf("[%s] Dword Mask: 0x%08x, Byte Offset: 0x%02x, Size: %02d",
		f.Name, f.Mask, f.ByteOffset, f.ByteLength)
}

// Table is the compiled layout of a region. It is not modified after Compile
// and may be shared between readers.
type Table struct {
	Region asl.Region
	Fields []Field

	// Duplicates lists names declared more than once. Lookup resolves them
	// to the last declaration.
	Duplicates []string

	index map[string]int
}

// Lookup returns the field with the given name.
func (t *Table) Lookup(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.Fields[i], true
}

func (t *Table) Len() int {
	return len(t.Fields)
}
