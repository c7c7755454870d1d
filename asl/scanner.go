package asl

import (
	"iter"
	"strconv"

	"github.com/wippyai/ecscan/asl/internal/scan"
	"github.com/wippyai/ecscan/errors"
)

const offsetKeyword = "Offset"

// Scanner yields the instructions of a Field list lazily. It cannot be
// restarted: once an instruction has been returned it is gone.
//
// At every position three forms are tried in order:
//
//	Offset (0xNN)      AbsoluteOffset
//	NAME, <decimal>    NamedField
//	<space>, <decimal> Padding (a field whose name is a single whitespace)
//
// If none matches the scanner moves one byte forward.
type Scanner struct {
	c   *scan.Cursor
	err error
}

func NewScanner(src string) *Scanner {
	return &Scanner{c: scan.New(src)}
}

// Next returns the next instruction. It returns false at end of input or
// after an error, which Err then reports.
func (s *Scanner) Next() (Instruction, bool) {
	if s.err != nil {
		return Instruction{}, false
	}
	for !s.c.EOF() {
		start := s.c.Pos()
		if ins, ok := s.offset(); ok {
			return ins, true
		}
		s.c.SetPos(start)
		if ins, ok := s.field(); ok {
			return ins, true
		}
		if s.err != nil {
			return Instruction{}, false
		}
		s.c.SetPos(start)
		if ins, ok := s.padding(); ok {
			return ins, true
		}
		if s.err != nil {
			return Instruction{}, false
		}
		s.c.SetPos(start)
		s.c.Advance()
	}
	return Instruction{}, false
}

// All drains the scanner as an iterator. Check Err after the loop.
func (s *Scanner) All() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for {
			ins, ok := s.Next()
			if !ok || !yield(ins) {
				return
			}
		}
	}
}

// Err returns the first error met while scanning.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) offset() (Instruction, bool) {
	if !s.c.Literal(offsetKeyword) {
		return Instruction{}, false
	}
	s.c.SkipSpace()
	if !s.c.Byte('(') {
		return Instruction{}, false
	}
	s.c.SkipSpace()
	off, ok := s.c.Hex(8)
	if !ok {
		return Instruction{}, false
	}
	s.c.SkipSpace()
	if !s.c.Byte(')') {
		return Instruction{}, false
	}
	return AbsoluteOffset(off), true
}

func (s *Scanner) field() (Instruction, bool) {
	name := s.c.Run(scan.IsIdent)
	if name == "" {
		return Instruction{}, false
	}
	width, ok := s.width(name)
	if !ok {
		return Instruction{}, false
	}
	return NamedField(name, width), true
}

func (s *Scanner) padding() (Instruction, bool) {
	if !scan.IsSpace(s.c.Peek()) {
		return Instruction{}, false
	}
	s.c.Advance()
	width, ok := s.width("")
	if !ok {
		return Instruction{}, false
	}
	return Padding(width), true
}

// width matches ", <decimal>" after a field or padding name.
func (s *Scanner) width(name string) (uint32, bool) {
	if !s.c.Byte(',') {
		return 0, false
	}
	s.c.SkipSpace()
	digits, ok := s.c.Decimal()
	if !ok {
		return 0, false
	}
	w, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		b := errors.New(errors.PhaseParse, errors.KindMalformedInput).
			Value(digits).
			Cause(err).
			Detail("bit width %s at line %d does not fit in 32 bits", digits, s.c.Line())
		if name != "" {
			b.Path(name)
		}
		s.err = b.Build()
		return 0, false
	}
	return uint32(w), true
}
