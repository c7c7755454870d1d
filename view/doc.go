// Package view provides the bounded byte sources a field table is read from.
//
// A Memory is addressed relative to the start of the region, so offset 0 is
// the region's base address whatever backs it:
//
//	mem := view.Bytes(dump)                         // in-memory buffer
//	mem, err := view.OpenFile("ec.bin")             // snapshot on disk
//	mem, err := view.OpenPhysical("/dev/mem", a, n) // live hardware (Linux)
//	mem := view.WrapWasm(instance.Memory(), base)   // emulated controller
//
// Every implementation checks bounds and reports errors.ErrOutOfRange rather
// than reading past its extent.
package view
