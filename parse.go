package ipspatch

import (
	"bytes"
	"encoding/binary"
)

var (
	header    = []byte("PATCH")
	eofMarker = []byte("EOF")
)

// Parse decodes an IPS patch. Parsing stops at the first EOF marker found at
// a record boundary; bytes after it are counted in Patch.Trailing but
// otherwise ignored. Literal payloads are copied, so b may be reused once
// Parse returns.
func Parse(b []byte, o ...FuncOption) (*Patch, error) {
	cfg := newConfig(o)

	if len(b) < len(header) {
		return nil, &HeaderError{Found: clone(b)}
	}
	if !cfg.lenientHeader && !bytes.Equal(b[:len(header)], header) {
		return nil, &HeaderError{Found: clone(b[:len(header)])}
	}

	r := newTrackedReader(b, len(header))
	p := &Patch{}

	for {
		if r.atEOF() {
			p.Trailing = r.remaining()
			return p, nil
		}
		if r.remaining() < len(eofMarker) && bytes.HasPrefix(eofMarker, r.rest()) {
			return nil, r.truncated("eof_marker", len(eofMarker))
		}

		rec, err := readRecord(r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
}

func readRecord(r *trackedReader) (Record, error) {
	ob, err := r.next(3, "offset")
	if err != nil {
		return nil, err
	}
	offset := uint32(ob[0])<<16 | uint32(ob[1])<<8 | uint32(ob[2])

	sb, err := r.next(2, "size")
	if err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint16(sb)

	if size == 0 {
		lb, err := r.next(2, "rle_length")
		if err != nil {
			return nil, err
		}
		vb, err := r.next(1, "rle_value")
		if err != nil {
			return nil, err
		}
		return RunLength{
			Offset: offset,
			Length: binary.BigEndian.Uint16(lb),
			Value:  vb[0],
		}, nil
	}

	data, err := r.next(int(size), "data")
	if err != nil {
		return nil, err
	}
	return Literal{Offset: offset, Data: clone(data)}, nil
}

// trackedReader walks a patch buffer without copying it, remembering its
// position for error reporting.
type trackedReader struct {
	buf []byte
	off int
}

func newTrackedReader(b []byte, off int) *trackedReader {
	return &trackedReader{buf: b, off: off}
}

func (t *trackedReader) pos() int       { return t.off }
func (t *trackedReader) remaining() int { return len(t.buf) - t.off }
func (t *trackedReader) rest() []byte   { return t.buf[t.off:] }

func (t *trackedReader) atEOF() bool {
	if !bytes.HasPrefix(t.rest(), eofMarker) {
		return false
	}
	t.off += len(eofMarker)
	return true
}

// next returns the following n bytes, or a TruncatedError naming field.
func (t *trackedReader) next(n int, field string) ([]byte, error) {
	if t.remaining() < n {
		return nil, t.truncated(field, n)
	}
	b := t.buf[t.off : t.off+n]
	t.off += n
	return b, nil
}

func (t *trackedReader) truncated(field string, want int) error {
	return &TruncatedError{
		Field: field,
		Pos:   t.pos(),
		Got:   t.remaining(),
		Want:  want,
	}
}

func clone(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
