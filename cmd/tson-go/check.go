package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	tson "github.com/tson-format/tson-go"
)

// check parses every input and reports, per input, the first syntax error
// found. It returns an error if any input failed to parse.
func check(args []string) error {
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	quiet := flags.BoolP("quiet", "q", false, "Only report failures.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	inputs, err := readInputs(flags.Args())
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		if _, err := tson.Parse(in.data); err != nil {
			log.Error().Str("input", in.name).Err(err).Msg("invalid tson")
			failed++
			continue
		}
		if !*quiet {
			log.Info().Str("input", in.name).Msg("ok")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

type input struct {
	name string
	data []byte
}

// readInputs slurps the named files, or standard input if no files were
// named.
func readInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return []input{{name: "<stdin>", data: data}}, nil
	}

	inputs := make([]input, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f)
		}
		inputs = append(inputs, input{name: f, data: data})
	}
	return inputs, nil
}
