// Package layout folds a stream of Field list instructions into a table of
// bit-accurate field descriptors and reads field values through a memory view.
//
// Every field is described relative to the first byte it touches: ByteOffset
// is that byte, Mask selects the field's bits within a little-endian 32-bit
// word starting there, and ByteLength is how many bytes the word needs. A
// field whose mask would need more than four bytes is rejected at compile
// time.
//
//	tbl, err := layout.Compile(region, scanner.All())
//	v, err := layout.ReadField(f, mem) // (word & Mask) >> Shift
package layout
