package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/kalafut/ipspatch"
	"github.com/kalafut/q"
	"github.com/mattn/go-isatty"
)

var CLI struct {
	Trace bool `help:"Dump parsed records with q."`

	Apply struct {
		PatchFile     string `arg help:"IPS patch file"`
		LenientHeader bool   `help:"Do not check the PATCH header."`
		GrownBounds   bool   `help:"Allow records to overwrite data appended by earlier records."`
		Force         bool   `short:"f" help:"Write binary output even when stdout is a terminal."`
	} `cmd help:"Apply a patch to stdin, writing the result to stdout."`

	Inspect struct {
		PatchFile     string `arg help:"IPS patch file"`
		LenientHeader bool   `help:"Do not check the PATCH header."`
		Format        string `default:"text" help:"Output format (text, yaml)."`
	} `cmd help:"List the records in a patch."`

	Preview struct {
		PatchFile     string `arg help:"IPS patch file"`
		LenientHeader bool   `help:"Do not check the PATCH header."`
		GrownBounds   bool   `help:"Allow records to overwrite data appended by earlier records."`
	} `cmd help:"Show a hex dump diff of stdin before and after patching."`
}

var (
	errInvalidPath = errors.New("invalid patch path")
	errTerminal    = errors.New("refusing to write binary output to a terminal (use --force)")
)

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ipspatch"),
		kong.Description("Apply IPS patches."),
	)

	var err error
	switch ctx.Command() {
	case "apply <patch-file>":
		if !CLI.Apply.Force && isatty.IsTerminal(os.Stdout.Fd()) {
			err = errTerminal
			break
		}
		err = runApply(CLI.Apply.PatchFile, os.Stdin, os.Stdout,
			options(CLI.Apply.LenientHeader, CLI.Apply.GrownBounds)...)
	case "inspect <patch-file>":
		err = runInspect(CLI.Inspect.PatchFile, CLI.Inspect.Format, os.Stdout,
			options(CLI.Inspect.LenientHeader, false)...)
	case "preview <patch-file>":
		err = runPreview(CLI.Preview.PatchFile, os.Stdin, os.Stdout, isatty.IsTerminal(os.Stdout.Fd()),
			options(CLI.Preview.LenientHeader, CLI.Preview.GrownBounds)...)
	default:
		panic(ctx.Command())
	}

	if err != nil {
		fatal(err)
	}
}

func options(lenientHeader, grownBounds bool) []ipspatch.FuncOption {
	var o []ipspatch.FuncOption
	if lenientHeader {
		o = append(o, ipspatch.WithLenientHeader())
	}
	if grownBounds {
		o = append(o, ipspatch.WithGrownBounds())
	}
	return o
}

func fatal(err error) {
	red := color.New(color.FgRed)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	red.Fprintf(os.Stderr, "ipspatch: %s\n", err)
	os.Exit(1)
}

func readPatchFile(path string) ([]byte, error) {
	if path == "" || strings.ContainsRune(path, 0) {
		return nil, fmt.Errorf("%w: %q", errInvalidPath, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch file: %w", err)
	}
	return b, nil
}

func loadPatch(path string, o ...ipspatch.FuncOption) (*ipspatch.Patch, error) {
	b, err := readPatchFile(path)
	if err != nil {
		return nil, err
	}

	p, err := ipspatch.Parse(b, o...)
	if err != nil {
		return nil, err
	}

	if CLI.Trace {
		for _, rec := range p.Records {
			q.Q(rec)
		}
	}
	return p, nil
}

// runApply patches everything read from in and writes the result to out.
func runApply(path string, in io.Reader, out io.Writer, o ...ipspatch.FuncOption) error {
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

	if _, err := out.Write(after); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
