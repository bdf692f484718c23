package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kalafut/ipspatch"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// runPreview applies the patch to in and writes a line diff of the hex dumps
// of the input and the result to out.
func runPreview(path string, in io.Reader, out io.Writer, colored bool, o ...ipspatch.FuncOption) error {
	p, err := loadPatch(path, o...)
	if err != nil {
		return err
	}

	before, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	after, err := p.Apply(before, o...)
	if err != nil {
		return err
	}

	if err := writeHexDiff(out, before, after, colored); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func writeHexDiff(w io.Writer, before, after []byte, colored bool) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(hex.Dump(before), hex.Dump(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	same := color.New(color.Faint)
	for _, c := range []*color.Color{add, del, same} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	changed := false
	for _, d := range diffs {
		text := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")

		var err error
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			_, err = same.Fprintf(w, "  ... %d unchanged lines\n", len(text))
		case diffmatchpatch.DiffDelete:
			changed = true
			for _, line := range text {
				if _, err = del.Fprintf(w, "-%s\n", line); err != nil {
					break
				}
			}
		case diffmatchpatch.DiffInsert:
			changed = true
			for _, line := range text {
				if _, err = add.Fprintf(w, "+%s\n", line); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}

	if !changed {
		_, err := fmt.Fprintln(w, "no changes")
		return err
	}
	return nil
}
