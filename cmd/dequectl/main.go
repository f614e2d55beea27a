// SPDX-License-Identifier: MIT

// dequectl builds a segmented deque from command-line values, runs one
// operation on it and prints the result. It exists to exercise the library
// end to end; it keeps no state between runs.
//
//	dequectl --values 5,3,9,1 --segment-size 2 --op sort
//	dequectl --values 1,2,3,4 --needle 2,3 --op search
//	dequectl --config dequectl.yaml --values 1,2 --op prepend --item 0
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/AlekhinALex/SegmentedDeque/algorithms"
	"github.com/AlekhinALex/SegmentedDeque/deque"
	"github.com/AlekhinALex/SegmentedDeque/internal/config"
	"github.com/AlekhinALex/SegmentedDeque/internal/logging"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

// result is the rendered output of an operation and the length of the
// sequence it came from (1 for scalar results).
type result struct {
	text   string
	length int
}

// operation runs against d and renders its result with delim.
type operation func(d *deque.Deque[int], o options) (result, error)

type options struct {
	needle []int
	item   int
	delim  string
}

var operations = map[string]operation{
	"print": func(d *deque.Deque[int], o options) (result, error) {
		return render(d, o.delim), nil
	},
	"sort": func(d *deque.Deque[int], o options) (result, error) {
		if err := d.Sort(d.Begin(), d.End(), algorithms.Ascending[int]); err != nil {
			return result{}, err
		}
		return render(d, o.delim), nil
	},
	"sort-desc": func(d *deque.Deque[int], o options) (result, error) {
		out, err := d.SortImmutable(d.Begin(), d.End(), algorithms.Descending[int])
		if err != nil {
			return result{}, err
		}
		return render(out, o.delim), nil
	},
	"where-even": func(d *deque.Deque[int], o options) (result, error) {
		out, err := d.Where(func(v int) bool { return v%2 == 0 })
		if err != nil {
			return result{}, err
		}
		return render(out, o.delim), nil
	},
	"reduce-sum": func(d *deque.Deque[int], _ options) (result, error) {
		return scalar(d.Reduce(func(acc, v int) int { return acc + v }, 0)), nil
	},
	"square": func(d *deque.Deque[int], o options) (result, error) {
		out := d.CloneEmpty()
		if err := algorithms.Map[int, int](d, out, func(v int) int { return v * v }); err != nil {
			return result{}, err
		}
		return render(out, o.delim), nil
	},
	"search": func(d *deque.Deque[int], o options) (result, error) {
		needle, err := deque.FromSlice(d.SegmentSize(), o.needle)
		if err != nil {
			return result{}, err
		}
		found, err := d.SearchSubsequence(d.CBegin(), d.CEnd(), needle.CBegin(), needle.CEnd(),
			func(a, b int) bool { return a == b })
		if err != nil {
			return result{}, err
		}
		return scalar(found), nil
	},
	"prepend": func(d *deque.Deque[int], o options) (result, error) {
		return render(d.PrependImmutable(o.item), o.delim), nil
	},
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func render(s sequence.Sequence[int], delim string) result {
	return result{text: sequence.Format(s.All(), delim), length: s.Len()}
}

func scalar(v any) result {
	return result{text: fmt.Sprint(v), length: 1}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		segmentSize int
		values      []int
		needle      []int
		op          string
		item        int
		logLevel    string
		logFormat   string
	)

	flagSet := pflag.NewFlagSet("dequectl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (default: $"+config.EnvVar+")")
	flagSet.IntVar(&segmentSize, "segment-size", 0, "chunk capacity (overrides segment_size)")
	flagSet.IntSliceVar(&values, "values", nil, "comma-separated integers to load")
	flagSet.IntSliceVar(&needle, "needle", nil, "comma-separated integers to search for (--op search)")
	flagSet.StringVar(&op, "op", "print", "operation: "+strings.Join(operationNames(), ", "))
	flagSet.IntVar(&item, "item", 0, "value for --op prepend")
	flagSet.StringVar(&logLevel, "log-level", "", "log level (overrides log.level)")
	flagSet.StringVar(&logFormat, "log-format", "", "console or json (overrides log.format)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, rest[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("segment-size") {
		cfg.SegmentSize = segmentSize
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flagSet.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	base, err := logging.FromConfig(cfg, stderr)
	if err != nil {
		return err
	}
	logger := logging.Component(base, "dequectl")

	fn, ok := operations[op]
	if !ok {
		return fmt.Errorf("%w: unknown --op %q (want one of %s)", errUsage, op, strings.Join(operationNames(), ", "))
	}

	return execute(logger, cfg, fn, op, values, options{needle: needle, item: item, delim: cfg.Delimiter}, stdout)
}

func execute(logger zerolog.Logger, cfg *config.Config, fn operation, op string, values []int, o options, stdout io.Writer) error {
	d, err := deque.FromSlice(cfg.SegmentSize, values)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("segment_size", d.SegmentSize()).
		Ints("segments", d.SegmentLengths()).
		Msg("deque built")

	res, err := fn(d, o)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("operation failed")
		return err
	}
	logger.Info().
		Str("op", op).
		Int("segment_size", cfg.SegmentSize).
		Int("input_len", len(values)).
		Int("output_len", res.length).
		Msg("operation complete")

	_, err = fmt.Fprintln(stdout, res.text)

	return err
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "dequectl: run one segmented-deque operation over a list of integers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dequectl --values 1,2,3 [--op NAME] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}
