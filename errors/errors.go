package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // region and field text scanning
	PhaseCompile Phase = "compile" // instruction stream to field table
	PhaseRead    Phase = "read"    // field extraction from a memory view
	PhaseMap     Phase = "map"     // opening or mapping a memory view
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedInput   Kind = "malformed_input"
	KindUnsupportedWidth Kind = "unsupported_width"
	KindDuplicateField   Kind = "duplicate_field"
	KindOutOfRange       Kind = "out_of_range"
	KindNotFound         Kind = "not_found"
	KindUnsupported      Kind = "unsupported"
)

// Sentinels for errors.Is. They match on Kind only.
var (
	ErrMalformedInput        = &Error{Kind: KindMalformedInput}
	ErrUnsupportedFieldWidth = &Error{Kind: KindUnsupportedWidth}
	ErrDuplicateFieldName    = &Error{Kind: KindDuplicateField}
	ErrOutOfRange            = &Error{Kind: KindOutOfRange}
	ErrNotFound              = &Error{Kind: KindNotFound}
)

// Error is the structured error type used throughout ecscan
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a
// Phase matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedInput creates an error for declaration text that cannot be used
func MalformedInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedInput,
		Detail: detail,
	}
}

// UnsupportedWidth creates an error for a field whose mask does not fit a 32-bit word
func UnsupportedWidth(name string, width, byteLength uint32) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindUnsupportedWidth,
		Path:   []string{name},
		Detail: fmt.Sprintf("%d-bit field spans %d bytes (max 4)", width, byteLength),
		Value:  width,
	}
}

// DuplicateField creates an error for a field name declared twice
func DuplicateField(name string, first, second int) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindDuplicateField,
		Path:   []string{name},
		Detail: fmt.Sprintf("field %q declared at index %d and %d", name, first, second),
		Value:  name,
	}
}

// OutOfRange creates an error for a read past the end of a memory view
func OutOfRange(phase Phase, path []string, offset, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("read of %d bytes at offset 0x%x exceeds extent 0x%x", length, offset, size),
		Value:  offset,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
