// Command logictools enumerates boolean formulas over a fixed number of
// variables, groups them by truth table, and reports the smallest formula
// found for each table, either as a flat text listing or as paginated HTML.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lootsmuggler/logictools/enum"
	"github.com/lootsmuggler/logictools/report"
)

type options struct {
	n       int
	output  string
	outDir  string
	maxOps  int
	workers int
	verbose bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.IntVarP(&o.n, "vars", "n", 3, "number of boolean variables (1..5; intractable from 4 up)")
	fs.StringVarP(&o.output, "output", "o", "text", "output mode: text or html")
	fs.StringVar(&o.outDir, "out-dir", "logictools-out", "directory the report is written to")
	fs.IntVar(&o.maxOps, "max-ops", 0, "generation ceiling in binary operators per formula (0 selects a per-n default)")
	fs.IntVar(&o.workers, "workers", 0, "goroutines evaluating each size class (0 selects the number of CPUs)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "logictools",
		Short: "catalog boolean formulas by truth table",
		Long: `logictools generates boolean formulas over n variables in order of
increasing binary-operator count, computes their truth tables, and catalogs
for each truth table the smallest formula found together with every
equivalent formula. Text mode writes a flat formulalist.txt; html mode
writes paginated truthtablesN.htm files, one section per truth table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o)
		},
	}
	addFlags(cmd.Flags(), o)
	return cmd
}

func run(ctx context.Context, o *options) error {
	log := logrus.StandardLogger()
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if o.output != "text" && o.output != "html" {
		return errors.Errorf("invalid output mode %q: want text or html", o.output)
	}

	log.WithFields(logrus.Fields{"n": o.n, "output": o.output}).Info("enumerating formulas")
	res, err := enum.Run(ctx,
		enum.N(o.n),
		enum.MaxOps(o.maxOps),
		enum.Workers(o.workers),
		enum.Logger(log),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"formulas": res.Generated,
		"tables":   res.Catalog.Len(),
		"elapsed":  res.Elapsed,
	}).Info("enumeration finished")
	if res.Interrupted {
		log.Warn("run interrupted; reporting partial results")
	} else if !res.Complete {
		log.WithFields(logrus.Fields{
			"found":    res.Catalog.Len(),
			"possible": enum.NumTables(res.N),
			"max-ops":  res.MaxOps,
		}).Warn("generation incomplete: size ceiling reached before all truth tables were discovered")
	}

	if err := report.EnsureOutputDir(o.outDir); err != nil {
		return err
	}
	if o.output == "html" {
		paths, err := report.WriteHTML(o.outDir, res)
		if err != nil {
			return err
		}
		log.WithField("files", len(paths)).Infof("truth table report written to %s", o.outDir)
		return nil
	}
	path, err := report.WriteTextFile(o.outDir, res)
	if err != nil {
		return err
	}
	log.Infof("formula list written to %s", path)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
