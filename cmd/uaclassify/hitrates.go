package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fernwood-systems/uaclassify/cache"
	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/monitoring"
	"github.com/fernwood-systems/uaclassify/resolver"
)

func newHitratesCmd(logger *zap.Logger) *cobra.Command {
	var cacheSizes []int

	cmd := &cobra.Command{
		Use:   "hitrates <file>",
		Short: "Measure cache hit rates of each replacement policy against a sample corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			total := len(lines)
			uniques := len(uniqueStrings(lines))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d lines, %d uniques\n", total, uniques)
			if total > 0 {
				fmt.Fprintf(out, "ideal hit rate: %.0f%%\n\n", float64(total-uniques)/float64(total)*100)
			}

			policies := map[string]func(int) resolverAndCounter{
				"clearing": func(n int) resolverAndCounter { return withCounting(cache.NewClearing(n)) },
				"lru":      func(n int) resolverAndCounter { return withCounting(cache.NewLRU(n)) },
				"s3fifo":   func(n int) resolverAndCounter { return withCounting(cache.NewS3Fifo(n)) },
				"sieve":    func(n int) resolverAndCounter { return withCounting(cache.NewSieve(n)) },
			}

			for _, name := range []string{"clearing", "lru", "s3fifo", "sieve"} {
				build := policies[name]
				for _, size := range cacheSizes {
					rc := build(size)
					for _, ua := range lines {
						if _, err := rc.resolver.Resolve(ua, domain.UserAgent); err != nil {
							logger.Warn("resolve failed during hitrate replay", zap.Error(err))
						}
					}
					rate := monitoring.HitRate(int64(total), rc.counter.Count())
					fmt.Fprintf(out, "%s(%d): %.0f%% hit rate\n", name, size, rate*100)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&cacheSizes, "cachesizes", []int{10, 20, 50, 100, 200, 500, 1000, 2000, 5000}, "cache sizes to test")
	return cmd
}

type resolverAndCounter struct {
	resolver resolver.Resolver
	counter  *monitoring.Counting
}

func withCounting(c cache.Cache) resolverAndCounter {
	counter := monitoring.NewCounting(monitoring.Noop{})
	return resolverAndCounter{
		resolver: resolver.NewCaching(counter, c),
		counter:  counter,
	}
}

func uniqueStrings(lines []string) map[string]struct{} {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		seen[l] = struct{}{}
	}
	return seen
}
