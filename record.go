package ipspatch

import "fmt"

// MaxOffset is the largest offset a 24-bit record field can address.
const MaxOffset = 0xFFFFFF

// Record is one edit in a patch. It is implemented by Literal and RunLength
// only.
type Record interface {
	// Start is the absolute output offset the record writes to.
	Start() int
	// Len is the number of bytes the record writes.
	Len() int
	String() string

	isRecord()
}

// Literal writes Data starting at Offset.
type Literal struct {
	Offset uint32
	Data   []byte
}

// RunLength writes Length copies of Value starting at Offset.
type RunLength struct {
	Offset uint32
	Length uint16
	Value  byte
}

func (l Literal) Start() int { return int(l.Offset) }
func (l Literal) Len() int   { return len(l.Data) }
func (Literal) isRecord()    {}

func (l Literal) String() string {
	return fmt.Sprintf("DATA : %x, %x", l.Offset, len(l.Data))
}

func (r RunLength) Start() int { return int(r.Offset) }
func (r RunLength) Len() int   { return int(r.Length) }
func (RunLength) isRecord()    {}

func (r RunLength) String() string {
	return fmt.Sprintf("RLE  : %x, %x, %x", r.Offset, r.Length, r.Value)
}

// Patch is an ordered list of records. Order matters: later records win
// where they overlap earlier ones.
type Patch struct {
	Records []Record

	// Trailing counts the bytes that followed the EOF marker.
	Trailing int
}
