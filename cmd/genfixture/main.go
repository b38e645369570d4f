// Command genfixture generates synthetic WordStats text corpora or CCC
// signal files for exercising the farm without hand-built inputs. It is
// gated entirely behind its own subcommands and never runs as part of
// wordstats/ccc.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alx/taskfarm/internal/fixtures"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: genfixture <wordstats|ccc> [flags] <output-path>")
	}

	switch args[0] {
	case "wordstats":
		return runWordStats(args[1:])
	case "ccc":
		return runCCC(args[1:])
	default:
		return fmt.Errorf("genfixture: unknown subcommand %q", args[0])
	}
}

func runWordStats(args []string) error {
	fs := flag.NewFlagSet("genfixture wordstats", flag.ContinueOnError)
	words := fs.Int("words", 1000, "number of words to generate")
	seed := fs.Int64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: genfixture wordstats [-words N] [-seed S] <output-path>")
	}

	terminateCh := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		fixtures.DisplayProgressBar(terminateCh)
		close(done)
	}()

	checksum, err := fixtures.WriteTextCorpus(rest[0], *words, *seed)
	terminateCh <- struct{}{}
	<-done
	if err != nil {
		return err
	}

	fmt.Printf("%s: sha256=%s\n", rest[0], checksum)
	return nil
}

func runCCC(args []string) error {
	fs := flag.NewFlagSet("genfixture ccc", flag.ContinueOnError)
	n := fs.Int("n", 256, "signal length N")
	seed := fs.Int64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: genfixture ccc [-n N] [-seed S] <output-path>")
	}

	terminateCh := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		fixtures.DisplayProgressBar(terminateCh)
		close(done)
	}()

	checksum, err := fixtures.WriteSignalFile(rest[0], *n, *seed)
	terminateCh <- struct{}{}
	<-done
	if err != nil {
		return err
	}

	fmt.Printf("%s: sha256=%s\n", rest[0], checksum)
	return nil
}
