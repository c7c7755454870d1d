package asl

import (
	"fmt"
	"strings"

	"github.com/wippyai/ecscan/asl/internal/scan"
	"github.com/wippyai/ecscan/errors"
)

const regionKeyword = "OperationRegion"

// Region is the physical window an OperationRegion statement declares.
type Region struct {
	Name    string
	Space   string
	Address uint32
	Size    uint32
}

func (r Region) String() string {
	return fmt.Sprintf("%s (%s) 0x%08X+0x%X", r.Name, r.Space, r.Address, r.Size)
}

// ExtractRegion locates the first well-formed OperationRegion statement and
// returns it together with the text that follows its closing parenthesis.
// Later OperationRegion statements are left in the returned text.
func ExtractRegion(src string) (Region, string, error) {
	from := 0
	for {
		idx := strings.Index(src[from:], regionKeyword)
		if idx < 0 {
			return Region{}, "", errors.MalformedInput(errors.PhaseParse, "no OperationRegion statement found")
		}
		c := scan.New(src)
		c.SetPos(from + idx)
		if r, ok := parseRegion(c); ok {
			if r.Size == 0 {
				return Region{}, "", errors.New(errors.PhaseParse, errors.KindMalformedInput).
					Path(r.Name).
					Detail("OperationRegion at line %d has zero size", c.Line()).
					Build()
			}
			return r, c.Rest(), nil
		}
		from += idx + len(regionKeyword)
	}
}

// parseRegion matches
//
//	OperationRegion ( name , space , 0xADDRESS , 0xSIZE )
func parseRegion(c *scan.Cursor) (Region, bool) {
	var r Region
	if !c.Literal(regionKeyword) {
		return r, false
	}
	c.SkipSpace()
	if !c.Byte('(') {
		return r, false
	}
	c.SkipSpace()
	if r.Name = c.Run(scan.IsNamePath); r.Name == "" {
		return r, false
	}
	if !comma(c) {
		return r, false
	}
	if r.Space = c.Run(scan.IsIdent); r.Space == "" {
		return r, false
	}
	if !comma(c) {
		return r, false
	}
	var ok bool
	if r.Address, ok = c.Hex(8); !ok {
		return r, false
	}
	if !comma(c) {
		return r, false
	}
	if r.Size, ok = c.Hex(8); !ok {
		return r, false
	}
	c.SkipSpace()
	return r, c.Byte(')')
}

func comma(c *scan.Cursor) bool {
	c.SkipSpace()
	if !c.Byte(',') {
		return false
	}
	c.SkipSpace()
	return true
}
