package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/kalafut/ipspatch"
)

type patchView struct {
	Records  []recordView `yaml:"records"`
	Trailing int          `yaml:"trailing,omitempty"`
}

type recordView struct {
	Type   string `yaml:"type"`
	Offset string `yaml:"offset"`
	Size   int    `yaml:"size"`
	Value  string `yaml:"value,omitempty"`
	Data   string `yaml:"data,omitempty"`
}

func newPatchView(p *ipspatch.Patch) patchView {
	v := patchView{
		Records:  make([]recordView, 0, len(p.Records)),
		Trailing: p.Trailing,
	}

	for _, rec := range p.Records {
		rv := recordView{
			Offset: fmt.Sprintf("0x%06x", rec.Start()),
			Size:   rec.Len(),
		}
		switch r := rec.(type) {
		case ipspatch.Literal:
			rv.Type = "literal"
			rv.Data = hex.EncodeToString(r.Data)
		case ipspatch.RunLength:
			rv.Type = "rle"
			rv.Value = fmt.Sprintf("0x%02x", r.Value)
		}
		v.Records = append(v.Records, rv)
	}
	return v
}

func runInspect(path, format string, out io.Writer, o ...ipspatch.FuncOption) error {
	p, err := loadPatch(path, o...)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for i, rec := range p.Records {
			if _, err := fmt.Fprintf(out, "%5d  %v\n", i, rec); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if p.Trailing > 0 {
			_, err = fmt.Fprintf(out, "%d trailing bytes after EOF\n", p.Trailing)
		}
	case "yaml":
		var b []byte
		b, err = yaml.Marshal(newPatchView(p))
		if err != nil {
			return err
		}
		_, err = out.Write(b)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
