package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// main is the main entry point for tson-go.
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		fmt.Println("tson-go", version)

	case "check":
		err = check(os.Args[2:])

	case "format":
		err = format(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  tson-go help")
	fmt.Println("  tson-go version")
	fmt.Println("  tson-go check [files]")
	fmt.Println("  tson-go format [flags] [files]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  check      Parses the input file(s), reporting the first error in each.")
	fmt.Println("  format     Parses the input file(s) and re-emits them as canonical text.")
	fmt.Println()
	fmt.Println("With no files, check and format read from standard input.")
}
