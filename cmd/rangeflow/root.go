package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/rangeflow/pkg/rangeanalysis"
	"github.com/gitrdm/rangeflow/pkg/rangegraph"
	"github.com/gitrdm/rangeflow/pkg/rangereport"
)

const envLogLevel = "RANGEFLOW_LOG_LEVEL"

type rootOptions struct {
	verbose   bool
	maxVisits int
	json      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rangeflow <input-path> <output-path>",
		Short: "Detect statically-decided comparisons in a control-flow graph",
		Long: "rangeflow runs an interval-set dataflow analysis over a JSON-encoded\n" +
			"control-flow graph and writes the comparisons it could prove always\n" +
			"true or always false to the given output path.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each node visit at debug level")
	cmd.Flags().IntVar(&opts.maxVisits, "max-visits", 0, "override the per-node visit cap (0 keeps the default)")
	cmd.Flags().BoolVar(&opts.json, "json", true, "write diagnostics as JSON instead of a colorized summary")

	return cmd
}

func run(cmd *cobra.Command, inputPath, outputPath string, opts *rootOptions) error {
	logger := newLogger(opts.verbose)

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("rangeflow: open input: %w", err)
	}
	defer in.Close()

	graph, err := rangegraph.Decode(in)
	if err != nil {
		return fmt.Errorf("rangeflow: decode graph: %w", err)
	}

	analyzeOpts := []rangeanalysis.Option{rangeanalysis.WithLogger(logger)}
	if opts.maxVisits > 0 {
		analyzeOpts = append(analyzeOpts, rangeanalysis.WithMaxVisits(opts.maxVisits))
	}

	diags, err := rangeanalysis.Analyze(graph, analyzeOpts...)
	if err != nil {
		return fmt.Errorf("rangeflow: analyze: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("rangeflow: open output: %w", err)
	}
	defer out.Close()

	if opts.json {
		if err := rangereport.Encode(out, diags); err != nil {
			return fmt.Errorf("rangeflow: write diagnostics: %w", err)
		}
	} else {
		rangereport.Summarize(out, diags)
	}

	logger.WithField("diagnostics", len(diags)).Info("analysis complete")
	return nil
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if level, err := logrus.ParseLevel(os.Getenv(envLogLevel)); err == nil {
		logger.SetLevel(level)
	}
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
