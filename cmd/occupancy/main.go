package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/viant/occupancy-knn/config"
	"github.com/viant/occupancy-knn/dataset"
	"github.com/viant/occupancy-knn/engine"
	"github.com/viant/occupancy-knn/knn"
	"github.com/viant/occupancy-knn/plot"
	"github.com/viant/occupancy-knn/report"
	"github.com/viant/occupancy-knn/store"
)

func main() {
	configPath := flag.String("config", "", "YAML config path (default: configs/occupancy.yaml or occupancy.yaml)")
	train := flag.String("train", "", "training data file")
	test := flag.String("test", "", "testing data file")
	features := flag.String("features", "", "comma separated feature columns")
	indexKind := flag.String("index", "", "neighbor index: bruteforce or vptree")
	workers := flag.Int("workers", 0, "prediction goroutines (0: config value)")
	kFrom := flag.Int("kfrom", 0, "first K of the sweep")
	kTo := flag.Int("kto", 0, "last K of the sweep")
	plots := flag.String("plots", "", "directory for scatter plots")
	dbPath := flag.String("db", "", "SQLite file for datasets and sweep runs")
	level := flag.String("log-level", "", "log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	override(&cfg.Data.Train, *train)
	override(&cfg.Data.Test, *test)
	if *features != "" {
		cfg.Data.Features = strings.Split(*features, ",")
	}
	override(&cfg.Classifier.Index, *indexKind)
	override(&cfg.Report.PlotsDir, *plots)
	override(&cfg.Report.StorePath, *dbPath)
	override(&cfg.Log.Level, *level)
	if *workers != 0 {
		cfg.Classifier.Workers = *workers
	}
	if *kFrom > 0 {
		cfg.Sweep.KFrom = *kFrom
	}
	if *kTo > 0 {
		cfg.Sweep.KTo = *kTo
	}

	logger := newLogger(cfg.Log, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// run loads the data, reports feature diagnostics, sweeps K on the training
// and testing sets and prints the confusion matrix of the chosen K.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	split, err := dataset.LoadSplit(cfg.Data.Train, cfg.Data.Test, dataset.LoadOptions{
		Features: cfg.Data.Features,
		Comma:    cfg.Data.CommaRune(),
	})
	if err != nil {
		return err
	}
	logger.Info("data loaded",
		"train", split.Train.Len(), "test", split.Test.Len(),
		"features", split.Train.Names(),
		"train_occupied", split.Train.ClassCounts()[dataset.Occupied])

	reporters := report.Multi{report.NewText(out)}
	if cfg.Report.StorePath != "" {
		db, err := engine.Open(cfg.Report.StorePath)
		if err != nil {
			return err
		}
		defer db.Close()
		s, err := store.New(ctx, db)
		if err != nil {
			return err
		}
		if err := s.SaveDataset(ctx, "train", split.Train); err != nil {
			return err
		}
		if err := s.SaveDataset(ctx, "test", split.Test); err != nil {
			return err
		}
		reporters = append(reporters, report.NewStore(s))
		logger.Info("store ready", "path", cfg.Report.StorePath)
	}

	if err := reporters.Correlations(ctx, "train", report.Correlate(split.Train)); err != nil {
		return err
	}
	if cfg.Report.PlotsDir != "" {
		paths, err := plot.AllPairs(split.Train, cfg.Report.PlotsDir, cfg.Report.PlotFormat)
		if err != nil {
			return err
		}
		logger.Info("scatter plots written", "dir", cfg.Report.PlotsDir, "count", len(paths))
	}

	opts := []knn.Option{
		knn.WithIndex(knn.IndexKind(cfg.Classifier.Index)),
		knn.WithWorkers(cfg.Classifier.Workers),
	}
	ks := knn.OddKs(cfg.Sweep.KFrom, cfg.Sweep.KTo)
	sweeps := []struct {
		ref, eval       string
		refSet, evalSet *dataset.Dataset
	}{
		{ref: "train", eval: "train", refSet: split.Train, evalSet: split.Train},
		{ref: "train", eval: "test", refSet: split.Train, evalSet: split.Test},
	}
	var testResults []knn.Result
	for _, sw := range sweeps {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("sweep started", "reference", sw.ref, "evaluation", sw.eval, "ks", len(ks))
		results, err := knn.Sweep(sw.refSet, sw.evalSet, ks, opts...)
		if err != nil {
			return err
		}
		if err := reporters.Sweep(ctx, report.Sweep{Reference: sw.ref, Evaluation: sw.eval, Results: results}); err != nil {
			return err
		}
		testResults = results
	}

	k := cfg.Sweep.ConfusionK
	if k == 0 {
		best, ok := knn.BestK(testResults)
		if !ok {
			return nil
		}
		k = best.K
	}
	c, err := knn.New(split.Train, opts...)
	if err != nil {
		return err
	}
	m, err := knn.ConfusionMatrix(c, split.Test, k)
	if err != nil {
		return err
	}
	return reporters.Confusion(ctx, fmt.Sprintf("test confusion matrix (K=%d)", k), m)
}
