package layout

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/wippyai/ecscan/asl"
	"github.com/wippyai/ecscan/errors"
	"github.com/wippyai/ecscan/view"
)

func TestReadField(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		mem   view.Bytes
		want  uint32
	}{
		{
			"high nibble",
			Field{Name: "N", Mask: 0x000000F0, ByteOffset: 0, ByteLength: 1},
			view.Bytes{0x5A, 0, 0, 0},
			5,
		},
		{
			"little endian word",
			Field{Name: "W", Mask: 0xFFFFFFFF, ByteOffset: 0, ByteLength: 4},
			view.Bytes{0x78, 0x56, 0x34, 0x12},
			0x12345678,
		},
		{
			"three bytes zero extended",
			Field{Name: "T", Mask: 0x00FFFFFF, ByteOffset: 1, ByteLength: 3},
			view.Bytes{0xFF, 0x01, 0x02, 0x03},
			0x030201,
		},
		{
			"straddles a byte boundary",
			Field{Name: "S", Mask: 0x0FF0, ByteOffset: 2, ByteLength: 2},
			view.Bytes{0, 0, 0xB0, 0x0A},
			0xAB,
		},
		{
			"single bit",
			Field{Name: "B", Mask: 0x80, ByteOffset: 0, ByteLength: 1},
			view.Bytes{0x80},
			1,
		},
		{
			"zero width",
			Field{Name: "Z", Mask: 0, ByteOffset: 0, ByteLength: 1},
			view.Bytes{0xFF},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadField(tt.field, tt.mem)
			if err != nil {
				t.Fatalf("ReadField() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadField() = 0x%X, want 0x%X", got, tt.want)
			}
		})
	}
}

func TestReadField_OutOfRange(t *testing.T) {
	f := Field{Name: "TAIL", Mask: 0xFFFF, ByteOffset: 3, ByteLength: 2}
	_, err := ReadField(f, view.Bytes{0, 0, 0, 0})
	if !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("error = %v, want out of range", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || len(e.Path) == 0 || e.Path[0] != "TAIL" {
		t.Errorf("error should carry the field name, got %v", err)
	}
}

func TestReadAll_ContinuesPastFailures(t *testing.T) {
	tbl := compile(t, []asl.Instruction{
		asl.NamedField("FLAG", 1),
		asl.AbsoluteOffset(0x40),
		asl.NamedField("FAR", 8),
		asl.AbsoluteOffset(0x01),
		asl.NamedField("STAT", 8),
	})
	mem := view.Bytes{0x01, 0x2A, 0, 0}

	got := ReadAll(tbl, mem)
	names := make([]string, len(got))
	for i, v := range got {
		names[i] = v.Name
	}
	if !slices.Equal(names, []string{"FLAG", "FAR", "STAT"}) {
		t.Fatalf("names = %v", names)
	}
	if got[0].Err != nil || got[0].Value != 1 {
		t.Errorf("FLAG = %+v", got[0])
	}
	if !stderrors.Is(got[1].Err, errors.ErrOutOfRange) {
		t.Errorf("FAR error = %v, want out of range", got[1].Err)
	}
	if got[2].Err != nil || got[2].Value != 0x2A {
		t.Errorf("STAT = %+v", got[2])
	}
}

func TestReadOne(t *testing.T) {
	tbl := compile(t, []asl.Instruction{asl.Padding(4), asl.NamedField("HI", 4)})
	mem := view.Bytes{0xC3}

	v, ok := ReadOne(tbl, mem, "HI")
	if !ok || v.Err != nil || v.Value != 0xC {
		t.Errorf("ReadOne(HI) = %+v, %v", v, ok)
	}
	if _, ok := ReadOne(tbl, mem, "MISSING"); ok {
		t.Error("ReadOne(MISSING) should report absence")
	}
}

type failingMemory struct{}

func (failingMemory) Read(uint32, uint32) ([]byte, error) {
	return nil, stderrors.New("bus error")
}

func (failingMemory) Size() uint32 { return 0x100 }

func TestReadField_ForeignError(t *testing.T) {
	_, err := ReadField(Field{Name: "X", Mask: 1, ByteLength: 1}, failingMemory{})
	if !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("error = %v, want out of range", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Cause == nil || e.Path[0] != "X" {
		t.Errorf("error should wrap the view error, got %v", err)
	}
}

type shortMemory struct{}

func (shortMemory) Read(uint32, uint32) ([]byte, error) { return []byte{1}, nil }

func (shortMemory) Size() uint32 { return 1 }

func TestReadField_ShortRead(t *testing.T) {
	_, err := ReadField(Field{Name: "W", Mask: 0xFFFF, ByteLength: 2}, shortMemory{})
	if !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("error = %v, want out of range", err)
	}
}
