package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/cardinality"
	"github.com/specterops/collections/util"
	"github.com/specterops/collections/util/channels"
	"github.com/specterops/collections/util/size"
	"github.com/spf13/cobra"
)

type config struct {
	size       int
	seed       uint64
	containers []string
	parallel   int
	verbose    bool
}

func newRootCommand() *cobra.Command {
	cfg := config{}

	command := &cobra.Command{
		Use:   "collbench",
		Short: "runs a scripted workload against every container",
		Long: `
  Runs a randomized but seeded workload against each selected container, checks the
  container's invariants along the way and logs the time each workload took.
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			return run(cmd.Context(), cfg)
		},
	}

	flags := command.Flags()
	flags.IntVar(&cfg.size, "size", 100_000, "number of values each workload inserts")
	flags.Uint64Var(&cfg.seed, "seed", 1, "seed for the random value streams")
	flags.StringSliceVar(&cfg.containers, "containers", workloadNames(), "containers to exercise")
	flags.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of workloads to run at the same time")
	flags.BoolVar(&cfg.verbose, "verbose", false, "log progress samples")

	return command
}

func run(ctx context.Context, cfg config) error {
	if cfg.size <= 0 {
		return errors.Newf("size must be positive, got %d", cfg.size)
	}

	selected := make([]workload, 0, len(cfg.containers))

	for _, name := range cfg.containers {
		idx := slices.IndexFunc(workloads, func(candidate workload) bool {
			return candidate.name == name
		})

		if idx < 0 {
			return errors.Newf("unknown container %q, expected one of %v", name, workloadNames())
		}

		selected = append(selected, workloads[idx])
	}

	var (
		limiter   = channels.NewConcurrencyLimiter(cfg.parallel)
		collector = util.NewErrorCollector()
		observed  = recorder{
			distinct: cardinality.ThreadSafeSimplex(cardinality.NewHyperLogLog64()),
			exact:    cardinality.ThreadSafeDuplex(cardinality.NewBitmap64()),
		}
		waitGroup sync.WaitGroup
		measure   = util.SLogMeasureFunction("collbench", slog.Int("size", cfg.size), slog.Int("workloads", len(selected)))
	)

	for idx, next := range selected {
		if !limiter.Acquire(ctx) {
			collector.Add(errors.Wrap(ctx.Err(), "waiting for a workload slot"))
			break
		}

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()
			defer limiter.Release()

			exit := util.SLogMeasureFunction("workload", slog.String("container", next.name))
			operations, err := next.run(ctx, cfg, newRandom(cfg.seed, idx), observed)

			if err != nil {
				util.SLogError("workload failed", err, slog.String("container", next.name))
				collector.Add(errors.Wrapf(err, "workload %s", next.name))
			}

			exit(slog.Int("operations", operations), slog.Bool("ok", err == nil))
		}()
	}

	waitGroup.Wait()

	measure(
		slog.Uint64("distinct_estimate", observed.distinct.Cardinality()),
		slog.Uint64("distinct_exact", observed.exact.Cardinality()),
		slog.String("heap_in_use", size.HeapInUse().String()),
		slog.Int("failures", collector.Len()),
	)

	return collector.Combined()
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
