package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fernwood-systems/uaclassify/cache"
	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/resolver"
)

func newBenchCmd(cfg config, logger *zap.Logger) *cobra.Command {
	var (
		regexesPath string
		caches      []string
		cacheSizes  []int
		workers     int
		rps         float64
	)

	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Benchmark resolver/cache configurations against a sample corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			matchers, err := matchersFromFlags(regexesPath)
			if err != nil {
				return err
			}

			var limiter *rate.Limiter
			if rps > 0 {
				burst := int(rps)
				if burst < 1 {
					burst = 1
				}
				limiter = rate.NewLimiter(rate.Limit(rps), burst)
			}

			for _, cacheName := range caches {
				for _, size := range cacheSizes {
					r := buildBenchResolver(matchers, cacheName, size)
					elapsed := replay(cmd.Context(), r, lines, workers, limiter)
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s size=%-6d %s (%v/line)\n",
						cacheName, size, elapsed, elapsed/time.Duration(len(lines)))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&regexesPath, "regexes", "R", "", "path to a custom regexes.yaml/json file")
	cmd.Flags().StringSliceVar(&caches, "caches", []string{"none", "clearing", "lru", "lru-locking"}, "cache implementations to benchmark")
	cmd.Flags().IntSliceVar(&cacheSizes, "cachesizes", []int{10, 100, 1000}, "cache sizes to benchmark, ignored for \"none\"")
	cmd.Flags().IntVar(&workers, "workers", cfg.BenchWorker, "number of concurrent replay workers")
	cmd.Flags().Float64Var(&rps, "rps", float64(cfg.ReplayRPS), "throttle replay to this many requests/sec (0 = unthrottled)")
	return cmd
}

func buildBenchResolver(matchers domain.Matchers, cacheName string, size int) resolver.Resolver {
	linear := resolver.NewLinear(matchers)
	switch cacheName {
	case "none":
		return linear
	case "clearing":
		return resolver.NewCaching(linear, cache.NewClearing(size))
	case "lru":
		return resolver.NewCaching(linear, cache.NewLRU(size))
	case "lru-locking":
		return resolver.NewCaching(linear, cache.NewLocking(cache.NewLRU(size)))
	case "s3fifo":
		return resolver.NewCaching(linear, cache.NewS3Fifo(size))
	case "sieve":
		return resolver.NewCaching(linear, cache.NewSieve(size))
	default:
		return linear
	}
}

// replay runs lines through r using a fixed-size worker pool, grounded
// on the teacher's channel-fed worker pool shape: a buffered task queue,
// N long-lived workers, a WaitGroup for completion. An optional rate
// limiter throttles how fast tasks are handed out, simulating bounded
// traffic rather than an unthrottled burst.
func replay(ctx context.Context, r resolver.Resolver, lines []string, workers int, limiter *rate.Limiter) time.Duration {
	if workers < 1 {
		workers = 1
	}
	tasks := make(chan string, len(lines))

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ua := range tasks {
				r.Resolve(ua, domain.All)
			}
		}()
	}

	for _, ua := range lines {
		if limiter != nil {
			limiter.Wait(ctx)
		}
		tasks <- ua
	}
	close(tasks)
	wg.Wait()
	return time.Since(start)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
