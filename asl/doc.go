// Package asl scans the subset of ACPI Source Language needed to describe an
// embedded controller RAM window: one OperationRegion statement and the Field
// list that follows it.
//
// Scanning happens in two steps. ExtractRegion finds the region and returns
// the text after it; a Scanner turns that text into a stream of Instructions:
//
//	region, rest, err := asl.ExtractRegion(src)
//	s := asl.NewScanner(rest)
//	for ins := range s.All() {
//		fmt.Println(ins)
//	}
//	if err := s.Err(); err != nil {
//		return err
//	}
//
// Anything the scanner does not recognize (braces, Field keywords, access
// attributes, comments) is skipped.
package asl
