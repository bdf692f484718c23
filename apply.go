package ipspatch

import "bytes"

// Apply replays the records of p, in order, over a copy of input.
//
// A record whose offset equals the current output length extends the output.
// Any other record overwrites in place and must end within the original
// input (or within the current output, with WithGrownBounds). The first
// record that fails this check aborts the whole apply with a *BoundsError.
func (p *Patch) Apply(input []byte, o ...FuncOption) ([]byte, error) {
	cfg := newConfig(o)

	out := clone(input)

	for i, rec := range p.Records {
		if rec.Start() == len(out) {
			out = appendRecord(out, rec)
			continue
		}

		limit := len(input)
		if cfg.grownBounds {
			limit = len(out)
		}
		if rec.Start()+rec.Len() > limit {
			return nil, &BoundsError{Index: i, Record: rec, Limit: limit}
		}

		switch r := rec.(type) {
		case Literal:
			copy(out[r.Start():], r.Data)
		case RunLength:
			fill(out[r.Start():r.Start()+r.Len()], r.Value)
		}
	}

	return out, nil
}

// Apply is shorthand for p.Apply.
func Apply(p *Patch, input []byte, o ...FuncOption) ([]byte, error) {
	return p.Apply(input, o...)
}

func appendRecord(out []byte, rec Record) []byte {
	switch r := rec.(type) {
	case Literal:
		return append(out, r.Data...)
	case RunLength:
		return append(out, bytes.Repeat([]byte{r.Value}, int(r.Length))...)
	}
	return out
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
