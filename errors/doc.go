// Package errors provides structured error types for ecscan.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, the offending value, a detail message and
// the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindUnsupportedWidth).
//		Path("STAT").
//		Value(40).
//		Detail("field spans %d bytes", 5).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedInput(errors.PhaseParse, "no OperationRegion statement")
//	err := errors.OutOfRange(errors.PhaseRead, path, 0xFE, 4, 0x100)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any error of the same Kind regardless of Phase.
package errors
