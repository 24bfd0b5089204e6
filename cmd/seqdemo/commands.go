package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/compare"
)

func newRangeCmd(a *app) *cobra.Command {
	var step int
	cmd := &cobra.Command{
		Use:   "range FIRST LAST",
		Short: "Print an integer progression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseInts(args)
			if err != nil {
				return err
			}
			r, err := collections.NewIntRange(bounds[0], bounds[1], step)
			if err != nil {
				return err
			}
			return emit(a, cmd.OutOrStdout(), r.String(), traced(a, "range", r.Sequence()))
		},
	}
	cmd.Flags().IntVar(&step, "step", 1, "distance between consecutive values (non-zero)")
	return cmd
}

func newChunkCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "chunk VALUES...",
		Short: "Split integers into fixed-size chunks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return errors.Newf("--size must be positive, got %d", size)
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			src := traced(a, "source", collections.FromSlice(values))
			return emit(a, cmd.OutOrStdout(), "", traced(a, "chunked", collections.Chunked(src, size)))
		},
	}
	cmd.Flags().IntVar(&size, "size", 2, "elements per chunk")
	return cmd
}

func newDistinctCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distinct VALUES...",
		Short: "Drop repeated values, keeping first occurrences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := traced(a, "source", collections.FromSlice(args))
			return emit(a, cmd.OutOrStdout(), "", traced(a, "distinct", collections.Distinct(src)))
		},
	}
}

func newFibCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the first Fibonacci numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return errors.Newf("--count must be non-negative, got %d", count)
			}
			pairs := collections.Generate(collections.PairOf(0, 1), func(p collections.Pair[int, int]) (collections.Pair[int, int], bool) {
				return collections.PairOf(p.Second, p.First+p.Second), true
			})
			fib := collections.Map(pairs, func(p collections.Pair[int, int]) int { return p.First })
			return emit(a, cmd.OutOrStdout(), "", traced(a, "fib", fib).Take(count))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "how many numbers to print")
	return cmd
}

func newPrimesCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Print the first prime numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return errors.Newf("--count must be non-negative, got %d", count)
			}
			candidates := traced(a, "candidates", collections.Generate(2, func(n int) (int, bool) { return n + 1, true }))
			primes := traced(a, "primes", candidates.Filter(isPrime))
			return emit(a, cmd.OutOrStdout(), "", primes.Take(count))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "how many primes to print")
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var desc bool
	cmd := &cobra.Command{
		Use:   "sort VALUES...",
		Short: "Sort integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			order := compare.Natural[int]()
			if desc {
				order = compare.ReverseOrder[int]()
			}
			src := traced(a, "source", collections.FromSlice(values))
			return emit(a, cmd.OutOrStdout(), "", src.SortedWith(order))
		},
	}
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	return collections.RangeTo(2, n).Sequence().
		TakeWhile(func(d int) bool { return d*d <= n }).
		NoneMatch(func(d int) bool { return n%d == 0 })
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", s)
		}
		out = append(out, n)
	}
	return out, nil
}
