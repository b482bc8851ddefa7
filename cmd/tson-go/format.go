package main

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	tson "github.com/tson-format/tson-go"
)

// format parses every input and re-emits it as canonical text, compact by
// default or indented with --pretty.
func format(args []string) error {
	flags := pflag.NewFlagSet("format", pflag.ContinueOnError)
	pretty := flags.BoolP("pretty", "p", false, "Indent output across multiple lines.")
	outf := flags.StringP("output", "o", "-", "Output file, or - for standard output.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	inputs, err := readInputs(flags.Args())
	if err != nil {
		return err
	}

	out := os.Stdout
	if *outf != "-" {
		f, err := os.Create(*outf)
		if err != nil {
			return errors.Wrapf(err, "creating %s", *outf)
		}
		defer f.Close()
		out = f
	}

	var opts tson.TextWriterOpts
	if *pretty {
		opts |= tson.TextWriterPretty
	}

	w := bufio.NewWriter(out)
	for _, in := range inputs {
		v, err := tson.Parse(in.data)
		if err != nil {
			log.Error().Str("input", in.name).Err(err).Msg("invalid tson")
			return errors.Wrapf(err, "parsing %s", in.name)
		}
		if err := tson.WriteTextOpts(v, w, opts); err != nil {
			return errors.Wrapf(err, "writing %s", in.name)
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "writing %s", in.name)
		}
	}
	return errors.Wrap(w.Flush(), "flushing output")
}
