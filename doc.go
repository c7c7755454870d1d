// Package ecscan reads named values out of an embedded controller's RAM using
// the layout an ACPI OperationRegion/Field declaration gives it.
//
// # Architecture Overview
//
//	ecscan/         Compile, ReadAll, ReadOne: the query surface
//	├── asl/        OperationRegion extraction and Field list scanning
//	├── layout/     instruction fold into masks and offsets, field reads
//	├── view/       bounded byte sources: buffer, snapshot, /dev/mem, wasm guest
//	├── errors/     structured error types
//	└── cmd/ecscan/ show, scan, query and monitor from the command line
//
// # Quick Start
//
//	region, tbl, err := ecscan.Compile(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mem, err := view.OpenPhysical("/dev/mem", region.Address, region.Size)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mem.Close()
//
//	for _, v := range ecscan.ReadAll(tbl, mem) {
//	    fmt.Printf("[%s] 0x%08X\n", v.Name, v.Value)
//	}
//
// # Field Placement
//
// Fields are placed by a bit cursor that starts at the region base. A named
// field occupies the next Width bits, a field with a blank name is padding,
// and Offset (0xNN) moves the cursor to byte NN. Each field is read as a
// little-endian word of at most four bytes starting at the first byte it
// touches; fields needing more than that are rejected by Compile.
//
// # Errors
//
// Compile fails with errors.ErrMalformedInput when no OperationRegion is found
// and errors.ErrUnsupportedFieldWidth for oversized fields. Reads fail per
// field with errors.ErrOutOfRange; ReadAll keeps going after a failure.
package ecscan
