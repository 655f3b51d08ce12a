// Command kitchen loads dishes from a YAML or JSON file, places them as
// orders and prints the kitchen report.
//
// Usage:
//
//	kitchen --file dishes.yaml [--capacity 100] [--serve Tacos] [--release-below 30] [--release-cuisine ITALIAN] [--metrics] [--verbose]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	kitchen "github.com/go-preform/orderkitchen"
)

type options struct {
	file           string
	capacity       int
	serve          []string
	releaseBelow   int
	releaseCuisine string
	metrics        bool
	verbose        bool
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "kitchen",
		Short:         "Place dishes in a kitchen and print its report",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: logOut, NoColor: true}).
				Level(kitchen.Ternary(opts.verbose, zerolog.DebugLevel, zerolog.InfoLevel)).
				With().Timestamp().Logger()
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), &logger, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "dish file to load, - for stdin")
	flags.IntVar(&opts.capacity, "capacity", kitchen.DefaultCapacity, "maximum number of dishes the kitchen holds")
	flags.StringSliceVar(&opts.serve, "serve", nil, "names of dishes to serve after ordering")
	flags.IntVar(&opts.releaseBelow, "release-below", -1, "release dishes with a prep time below this many minutes, 0 releases all")
	flags.StringVar(&opts.releaseCuisine, "release-cuisine", "", "release dishes of this cuisine, ALL releases everything")
	flags.BoolVar(&opts.metrics, "metrics", false, "print the kitchen gauges after the report")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func run(stdin io.Reader, out io.Writer, logger *zerolog.Logger, opts options) error {
	in := stdin
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return fmt.Errorf("open dish file: %w", err)
		}
		defer f.Close()
		in = f
	}
	dishes, err := kitchen.LoadDishes(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.file, err)
	}

	k := kitchen.NewKitchen(opts.capacity).SetLogger(logger)
	if logger.GetLevel() <= zerolog.DebugLevel {
		k.SetTracer(kitchen.NewZeroLogTraceableKitchen(logger))
	}
	accepted, err := k.OrderAll(dishes...)
	if errors.Is(err, kitchen.ErrKitchenFull) {
		logger.Warn().Err(err).Int("loaded", len(dishes)).Int("accepted", accepted).Int("capacity", opts.capacity).Msg("kitchen full, remaining orders dropped")
	} else if err != nil {
		return err
	} else {
		logger.Info().Int("loaded", len(dishes)).Int("accepted", accepted).Msg("orders placed")
	}

	for _, name := range opts.serve {
		if !serveByName(k, name) {
			logger.Warn().Str("dish", name).Msg("no such dish to serve")
		}
	}
	if released := k.ReleaseDishesBelowPrepTime(opts.releaseBelow); released > 0 {
		logger.Info().Int("threshold", opts.releaseBelow).Int("released", released).Msg("released quick dishes")
	}
	if opts.releaseCuisine != "" {
		cuisine := opts.releaseCuisine
		if kitchen.ContainsCuisineName(append(kitchen.CuisineNames(), kitchen.AllCuisines), cuisine) {
			cuisine = kitchen.NormalizeCuisineName(cuisine)
		}
		released := k.ReleaseDishesOfCuisineType(cuisine)
		logger.Info().Str("cuisine", cuisine).Int("released", released).Msg("released cuisine")
	}

	if err = k.Report(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if opts.metrics {
		return writeMetrics(out, k)
	}
	return nil
}

func serveByName(k *kitchen.Kitchen, name string) bool {
	for _, d := range k.Dishes() {
		if strings.EqualFold(d.Name, name) {
			return k.ServeDish(d)
		}
	}
	return false
}

func writeMetrics(out io.Writer, k *kitchen.Kitchen) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(kitchen.NewCollector(k, "")); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if _, err = fmt.Fprintln(out); err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
