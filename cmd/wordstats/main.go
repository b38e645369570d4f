// Command wordstats computes, for each input text file, the frequency
// distribution of word lengths and the (vowel count, word length)
// histogram, using the dispatcher/worker task farm.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alx/taskfarm/internal/aggregator"
	"github.com/alx/taskfarm/internal/config"
	"github.com/alx/taskfarm/internal/dispatcher"
	"github.com/alx/taskfarm/internal/logging"
	"github.com/alx/taskfarm/internal/report"
	"github.com/alx/taskfarm/internal/taskmodel"
	"github.com/alx/taskfarm/internal/tokenizer"
	"github.com/alx/taskfarm/internal/transport"
	"github.com/alx/taskfarm/internal/worker"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cli, err := config.ParseWordStatsArgs(args)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if err := logging.SetupZeroLog(cli.LogLevel); err != nil {
		return err
	}
	zapLogger, err := logging.NewZapLogger(false)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	readers := make([]io.Reader, len(cli.Files))
	for i, path := range cli.Files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		readers[i] = f
	}

	chunkReader := tokenizer.NewChunkReader(readers)
	source := dispatcher.NewWordStatsSource(chunkReader, int(cli.ChunkSize), zapLogger)

	tr := transport.New(cli.Workers)

	var mu sync.Mutex
	aggregates := make([]*aggregator.WordStatsAggregate, len(cli.Files))
	for i := range aggregates {
		aggregates[i] = aggregator.NewWordStatsAggregate()
	}

	onResult := func(result taskmodel.Result) error {
		mu.Lock()
		defer mu.Unlock()
		aggregates[result.FileID].Merge(result.WordStats)
		return nil
	}

	d, err := dispatcher.New(tr, taskmodel.KindWordStats, source, onResult, zapLogger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	for rank := 1; rank <= cli.Workers; rank++ {
		rank := rank
		w := worker.New(rank, taskmodel.KindWordStats, tr, zapLogger)
		g.Go(func() error { return w.Run(ctx) })
	}
	g.Go(func() error { return d.Run(ctx) })

	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range cli.Files {
		report.WordStats(os.Stdout, path, aggregates[i])
	}
	return nil
}
