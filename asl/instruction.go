package asl

import "fmt"

// Op is the kind of a field-list instruction.
type Op uint8

const (
	OpField   Op = iota // named field of Width bits
	OpPadding           // Width reserved bits
	OpOffset            // move the cursor to byte Offset
)

func (o Op) String() string {
	switch o {
	case OpField:
		return "field"
	case OpPadding:
		return "padding"
	case OpOffset:
		return "offset"
	}
	return "unknown"
}

// Instruction is one entry of a Field list, in declaration order.
// Name is set only for OpField, Width for OpField and OpPadding,
// Offset only for OpOffset.
type Instruction struct {
	Name   string
	Width  uint32
	Offset uint32
	Op     Op
}

func NamedField(name string, width uint32) Instruction {
	return Instruction{Op: OpField, Name: name, Width: width}
}

func Padding(width uint32) Instruction {
	return Instruction{Op: OpPadding, Width: width}
}

func AbsoluteOffset(byteOffset uint32) Instruction {
	return Instruction{Op: OpOffset, Offset: byteOffset}
}

func (i Instruction) String() string {
	switch i.Op {
	case OpField:
		return fmt.Sprintf("NamedField: %s %d", i.Name, i.Width)
	case OpPadding:
		return fmt.Sprintf("Padding: %d", i.Width)
	case OpOffset:
		return fmt.Sprintf("Offset: 0x%02X", i.Offset)
	}
	return "unknown instruction"
}
