// Command ccc computes the circular cross-correlation R[tau] for each pair
// of equal-length signals stored in the given files, either appending the
// result vector (default) or comparing it against a stored reference
// (-c), using the dispatcher/worker task farm.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/alx/taskfarm/internal/aggregator"
	"github.com/alx/taskfarm/internal/config"
	"github.com/alx/taskfarm/internal/dispatcher"
	"github.com/alx/taskfarm/internal/logging"
	"github.com/alx/taskfarm/internal/report"
	"github.com/alx/taskfarm/internal/signalfile"
	"github.com/alx/taskfarm/internal/taskmodel"
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
	cli, err := config.ParseCCCArgs(args)
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

	files := make(map[int32]*signalfile.SignalFile)
	aggregates := make(map[int32]*aggregator.CCCAggregate)
	filenames := make(map[int32]string)

	onFileOpened := func(fileID int32, sf *signalfile.SignalFile) {
		files[fileID] = sf
		aggregates[fileID] = aggregator.NewCCCAggregate(sf.N)
		filenames[fileID] = sf.Path
	}

	source := dispatcher.NewMultiCCCSource(cli.Files, cli.Compare, onFileOpened, zapLogger)
	tr := transport.New(cli.Workers)

	// onResult runs exclusively on the dispatcher's own goroutine (Run never
	// calls it concurrently with itself), so no locking is needed here.
	onResult := func(result taskmodel.Result) error {
		agg := aggregates[result.FileID]
		if err := agg.Store(result.CCC.Tau, result.CCC.Value); err != nil {
			return err
		}
		if !agg.Complete() {
			return nil
		}

		sf := files[result.FileID]
		name := filenames[result.FileID]
		defer func() {
			sf.Close()
			delete(files, result.FileID)
			delete(aggregates, result.FileID)
			delete(filenames, result.FileID)
		}()

		if cli.Compare {
			cmp, err := sf.CompareResults(agg.Result(), 1e-9)
			if err != nil {
				return err
			}
			report.CCCCompare(os.Stdout, name, cmp)
			return nil
		}

		if err := sf.WriteResults(agg.Result()); err != nil {
			return err
		}
		report.CCCAppend(os.Stdout, name, sf.N)
		return nil
	}

	d, err := dispatcher.New(tr, taskmodel.KindCCC, source, onResult, zapLogger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	for rank := 1; rank <= cli.Workers; rank++ {
		rank := rank
		w := worker.New(rank, taskmodel.KindCCC, tr, zapLogger)
		g.Go(func() error { return w.Run(ctx) })
	}
	g.Go(func() error { return d.Run(ctx) })

	return g.Wait()
}
