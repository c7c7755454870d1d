package layout

import (
	"encoding/binary"
	stderrors "errors"

	"github.com/wippyai/ecscan/errors"
	"github.com/wippyai/ecscan/view"
)

// Value is the result of reading one field.
type Value struct {
	Err   error
	Name  string
	Value uint32
}

// ReadField reads the field's bytes through mem and returns its value right
// aligned. Reads past the end of mem fail with errors.ErrOutOfRange.
func ReadField(f Field, mem view.Memory) (uint32, error) {
	data, err := mem.Read(f.ByteOffset, f.ByteLength)
	if err != nil {
		return 0, annotate(err, f.Name)
	}
	if len(data) < int(f.ByteLength) {
		return 0, errors.OutOfRange(errors.PhaseRead, []string{f.Name}, f.ByteOffset, f.ByteLength, mem.Size())
	}

	var word [4]byte
	copy(word[:], data[:f.ByteLength])
	return f.Extract(binary.LittleEndian.Uint32(word[:])), nil
}

// ReadAll reads every field in declaration order. A failing field carries
// its error in Value.Err; the remaining fields are still read.
func ReadAll(t *Table, mem view.Memory) []Value {
	out := make([]Value, 0, len(t.Fields))
	for _, f := range t.Fields {
		v, err := ReadField(f, mem)
		out = append(out, Value{Name: f.Name, Value: v, Err: err})
	}
	return out
}

// ReadOne reads a single field by name. It reports false if the table has
// no such field.
func ReadOne(t *Table, mem view.Memory, name string) (Value, bool) {
	f, ok := t.Lookup(name)
	if !ok {
		return Value{}, false
	}
	v, err := ReadField(f, mem)
	return Value{Name: f.Name, Value: v, Err: err}, true
}

// annotate attaches the field name to a view error.
func annotate(err error, name string) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return errors.New(errors.PhaseRead, errors.KindOutOfRange).
			Path(name).
			Cause(err).
			Build()
	}
	cp := *e
	cp.Path = append([]string{name}, e.Path...)
	return &cp
}
