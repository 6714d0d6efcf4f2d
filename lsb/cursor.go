package lsb

// Cursor walks a bitstream MSB-first. It is owned by one embed call.
type Cursor struct {
	data  []byte
	pos   uint64
	total uint64
}

// NewCursor creates a cursor positioned at the first bit of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, total: uint64(len(data)) * 8}
}

// NextBit returns the bit at the cursor and advances it. ok is false once
// every bit has been returned.
func (c *Cursor) NextBit() (bit byte, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	bit = (c.data[c.pos/8] >> (7 - c.pos%8)) & 1
	c.pos++
	return bit, true
}

// Position returns the number of bits consumed so far.
func (c *Cursor) Position() uint64 {
	return c.pos
}

// Remaining returns the number of bits not yet consumed.
func (c *Cursor) Remaining() uint64 {
	return c.total - c.pos
}

// Total returns the bitstream length in bits.
func (c *Cursor) Total() uint64 {
	return c.total
}
