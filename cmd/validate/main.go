package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/adventure-engine/pkg/loader"
)

func main() {
	asYAML := flag.Bool("yaml", false, "print the world summary as YAML")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-yaml] <advent.dat>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, flag.Arg(0), *asYAML); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, filename string, asYAML bool) error {
	w, err := loader.LoadFile(filename)
	if err != nil {
		return err
	}

	validator := &WorldValidator{}
	summary, verr := validator.Validate(filename, w)

	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		writeReport(out, summary)
	}

	if verr != nil {
		return fmt.Errorf("%d problem(s) in %s", len(summary.Problems), filename)
	}
	return nil
}

func writeReport(out io.Writer, s *Summary) {
	fmt.Fprintf(out, "Validating %s...\n", s.File)
	fmt.Fprintf(out, "  %d rooms (%d lit), %d objects (%d treasures), %d words\n", s.Rooms, s.LitRooms, s.Objects, s.Treasures, s.Words)
	fmt.Fprintf(out, "  %d messages, %d hints, %d ranks up to %d points\n", s.Messages, s.Hints, s.Classes, s.TopRanking)

	if len(s.Warnings) > 0 {
		fmt.Fprintf(out, "Warnings:\n  %s\n", strings.Join(s.Warnings, "\n  "))
	}
	if len(s.Problems) > 0 {
		fmt.Fprintf(out, "Problems:\n  %s\n", strings.Join(s.Problems, "\n  "))
		return
	}
	fmt.Fprintln(out, "World data is valid!")
}
