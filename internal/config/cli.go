// Package config implements the flag-based CLI argument parsing shared by
// cmd/wordstats and cmd/ccc, generalized from the teacher's Cli struct.
package config

import (
	"flag"
	"runtime"

	"github.com/pkg/errors"

	"github.com/alx/taskfarm/internal/common"
)

// ErrConfig tags a CLI usage error (missing file, bad flag value).
var ErrConfig = errors.New("config: invalid arguments")

// Cli holds the parsed command-line configuration. Not every field applies
// to every executable: ChunkSize is WordStats-only, Compare is CCC-only.
type Cli struct {
	Workers   int
	LogLevel  string
	ChunkSize int64
	Compare   bool
	Files     []string
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// ParseWordStatsArgs parses cmd/wordstats's flags: -workers, -chunksize,
// -loglevel, plus one or more positional file paths.
func ParseWordStatsArgs(args []string) (*Cli, error) {
	fs := flag.NewFlagSet("wordstats", flag.ContinueOnError)
	cli := &Cli{}

	fs.IntVar(&cli.Workers, "workers", defaultWorkers(), "number of worker goroutines")
	fs.Int64Var(&cli.ChunkSize, "chunksize", common.KiB(16), "text chunk size in bytes")
	fs.StringVar(&cli.LogLevel, "loglevel", "info", "zerolog level name")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}

	cli.Files = fs.Args()
	if len(cli.Files) == 0 {
		return nil, errors.Wrap(ErrConfig, "at least one input file is required")
	}
	if cli.Workers < 1 {
		return nil, errors.Wrapf(ErrConfig, "-workers must be >= 1, got %d", cli.Workers)
	}
	if cli.ChunkSize < 1 {
		return nil, errors.Wrapf(ErrConfig, "-chunksize must be >= 1, got %d", cli.ChunkSize)
	}

	return cli, nil
}

// ParseCCCArgs parses cmd/ccc's flags: -workers, -loglevel, -c (compare
// mode vs. default append mode), plus one or more positional file paths.
func ParseCCCArgs(args []string) (*Cli, error) {
	fs := flag.NewFlagSet("ccc", flag.ContinueOnError)
	cli := &Cli{}

	fs.IntVar(&cli.Workers, "workers", defaultWorkers(), "number of worker goroutines")
	fs.StringVar(&cli.LogLevel, "loglevel", "info", "zerolog level name")
	fs.BoolVar(&cli.Compare, "c", false, "compare mode: check computed R[] against a stored reference instead of appending")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}

	cli.Files = fs.Args()
	if len(cli.Files) == 0 {
		return nil, errors.Wrap(ErrConfig, "at least one input file is required")
	}
	if cli.Workers < 1 {
		return nil, errors.Wrapf(ErrConfig, "-workers must be >= 1, got %d", cli.Workers)
	}

	return cli, nil
}
