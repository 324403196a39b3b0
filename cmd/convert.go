package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/siebrand/dataknead/knead"
	"github.com/siebrand/dataknead/loader"
)

type convertOptions struct {
	From   string `validate:"omitempty,alphanum"`
	To     string `validate:"omitempty,alphanum"`
	Query  string
	Indent int `validate:"gte=0,lte=16"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func runConvert(cmd *cobra.Command, opts *convertOptions, in, out string) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	k, err := readInput(opts, in)
	if err != nil {
		return err
	}
	if opts.Query != "" {
		if k, err = k.Query(opts.Query); err != nil {
			return err
		}
	}

	l, err := outputLoader(opts, out)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("indent") {
		if si, ok := indenter(l); ok {
			si.SetIndent(opts.Indent)
		} else {
			return fmt.Errorf("format %q does not indent", l.Name())
		}
	}

	if out == "-" {
		return k.Write(os.Stdout, l)
	}
	return k.WriteFile(out, knead.WithLoader(l))
}

func readInput(opts *convertOptions, in string) (*knead.Knead, error) {
	if in == "-" {
		if opts.From == "" {
			return nil, errors.New("--from is required when reading from stdin")
		}
		return knead.Read(os.Stdin, opts.From)
	}
	if opts.From != "" {
		return knead.New(in, knead.WithFormat(opts.From))
	}
	return knead.New(in)
}

// indenter digs through gzip wrapping to the loader that renders the bytes;
// compression is transparent to formatting options.
func indenter(l loader.Loader) (interface{ SetIndent(int) }, bool) {
	if g, ok := l.(*loader.Gzip); ok {
		l = g.Inner
	}
	si, ok := l.(interface{ SetIndent(int) })
	return si, ok
}

func outputLoader(opts *convertOptions, out string) (loader.Loader, error) {
	if opts.To != "" {
		return loader.ByName(opts.To)
	}
	if out == "-" {
		return nil, errors.New("--to is required when writing to stdout")
	}
	return loader.ForPath(out)
}
