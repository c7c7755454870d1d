package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindUnsupportedWidth,
				Path:   []string{"BAT0", "RCAP"},
				Detail: "spans 5 bytes",
			},
			contains: []string{"[compile]", "unsupported_width", "BAT0.RCAP", "spans 5 bytes"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindOutOfRange,
			},
			contains: []string{"[read]", "out_of_range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseMap,
				Kind:   KindUnsupported,
				Detail: "open /dev/mem",
				Cause:  errors.New("permission denied"),
			},
			contains: []string{"[map]", "unsupported", "open /dev/mem", "caused by", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseMap,
		Kind:  KindMalformedInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRead,
		Kind:  KindOutOfRange,
		Path:  []string{"STAT"},
	}

	if !err.Is(&Error{Phase: PhaseRead, Kind: KindOutOfRange}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMap, Kind: KindOutOfRange}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRead, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("errors.Is should match the phase-less sentinel")
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Error("errors.Is should not match another sentinel")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCompile, KindUnsupportedWidth).
		Path("EC0", "BTST").
		Value(uint32(40)).
		Cause(cause).
		Detail("spans %d bytes", 5).
		Build()

	if err.Phase != PhaseCompile {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCompile)
	}
	if err.Kind != KindUnsupportedWidth {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedWidth)
	}
	if len(err.Path) != 2 || err.Path[0] != "EC0" || err.Path[1] != "BTST" {
		t.Errorf("Path = %v, want [EC0 BTST]", err.Path)
	}
	if err.Value != uint32(40) {
		t.Errorf("Value = %v, want 40", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "spans 5 bytes" {
		t.Errorf("Detail = %q, want 'spans 5 bytes'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MalformedInput", func(t *testing.T) {
		err := MalformedInput(PhaseParse, "no region")
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedInput)
		}
	})

	t.Run("UnsupportedWidth", func(t *testing.T) {
		err := UnsupportedWidth("BIG", 40, 5)
		if !errors.Is(err, ErrUnsupportedFieldWidth) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedWidth)
		}
		if err.Value != uint32(40) {
			t.Errorf("Value = %v, want 40", err.Value)
		}
		if !strings.Contains(err.Error(), "BIG") {
			t.Errorf("message %q should name the field", err.Error())
		}
	})

	t.Run("DuplicateField", func(t *testing.T) {
		err := DuplicateField("FLAG", 0, 3)
		if !errors.Is(err, ErrDuplicateFieldName) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicateField)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(PhaseRead, []string{"STAT"}, 0xFE, 4, 0x100)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
		}
		if !strings.Contains(err.Detail, "0xfe") {
			t.Errorf("Detail = %v, should contain offset", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRead, "field", "NOPE")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseMap, "physical memory on this platform")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseMap, KindUnsupported, cause, "mmap")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause reachable")
		}
	})
}
