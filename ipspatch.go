// Package ipspatch parses and applies patches in the IPS (International
// Patching System) format.
//
// An IPS patch is the ASCII magic "PATCH", a sequence of records, and the
// ASCII marker "EOF". Every record starts with a 3-byte big-endian offset and
// a 2-byte big-endian size. A non-zero size is followed by that many literal
// bytes; a zero size marks a run-length record, followed by a 2-byte length
// and the byte to repeat.
package ipspatch

// ApplyPatch parses patch and applies it to input, returning the patched
// copy. input is not modified.
func ApplyPatch(input, patch []byte, o ...FuncOption) ([]byte, error) {
	p, err := Parse(patch, o...)
	if err != nil {
		return nil, err
	}

	return p.Apply(input, o...)
}
