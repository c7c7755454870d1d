// Package scan provides the byte-level cursor shared by the region
// extractor and the field tokenizer.
package scan

import "strconv"

// Cursor walks an ASCII source left to right. All matchers either consume
// exactly what they match and report true, or leave the position untouched
// and report false.
type Cursor struct {
	src string
	pos int
}

func New(src string) *Cursor {
	return &Cursor{src: src}
}

func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) SetPos(pos int) { c.pos = pos }

func (c *Cursor) EOF() bool { return c.pos >= len(c.src) }

// Rest returns the unconsumed source.
func (c *Cursor) Rest() string { return c.src[c.pos:] }

// Line returns the 1-based line of the current position.
func (c *Cursor) Line() int {
	line := 1
	for i := 0; i < c.pos && i < len(c.src); i++ {
		if c.src[i] == '\n' {
			line++
		}
	}
	return line
}

// Peek returns the byte at the cursor, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.pos]
}

func (c *Cursor) Advance() {
	if !c.EOF() {
		c.pos++
	}
}

// SkipSpace consumes any run of whitespace.
func (c *Cursor) SkipSpace() {
	for !c.EOF() && IsSpace(c.src[c.pos]) {
		c.pos++
	}
}

// Byte consumes b if it is next.
func (c *Cursor) Byte(b byte) bool {
	if c.Peek() != b || c.EOF() {
		return false
	}
	c.pos++
	return true
}

// Literal consumes s if the source continues with it.
func (c *Cursor) Literal(s string) bool {
	if len(c.src)-c.pos < len(s) || c.src[c.pos:c.pos+len(s)] != s {
		return false
	}
	c.pos += len(s)
	return true
}

// Run consumes the longest run of bytes accepted by pred. It may be empty.
func (c *Cursor) Run(pred func(byte) bool) string {
	start := c.pos
	for !c.EOF() && pred(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// Hex consumes a 0x-prefixed hexadecimal literal of 1 to maxDigits digits.
// A longer digit run does not match.
func (c *Cursor) Hex(maxDigits int) (uint32, bool) {
	start := c.pos
	if !c.Literal("0x") && !c.Literal("0X") {
		return 0, false
	}
	digits := c.Run(IsHex)
	if len(digits) == 0 || len(digits) > maxDigits || len(digits) > 8 {
		c.pos = start
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		c.pos = start
		return 0, false
	}
	return uint32(v), true
}

// Decimal consumes a run of decimal digits and returns it unparsed.
func (c *Cursor) Decimal() (string, bool) {
	digits := c.Run(IsDigit)
	return digits, digits != ""
}

func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

func IsHex(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsIdent reports whether b may appear in a field name.
func IsIdent(b byte) bool {
	return IsDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsNamePath reports whether b may appear in an ASL name path such as \_SB.PCI0.EC0.
func IsNamePath(b byte) bool {
	return IsIdent(b) || b == '\\' || b == '^' || b == '.'
}
