package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/element"
	"github.com/weft-ui/weft/pkg/runtime"
	"github.com/weft-ui/weft/pkg/view"
)

type runConfig struct {
	Passes      int
	Rows        int
	Shuffle     bool
	MetricsAddr string
	LogFile     string
	Verbose     bool
}

func runCmd() *cobra.Command {
	cfg := runConfig{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run reconciliation passes over a synthetic keyed list",
		Long: `Run drives a keyed row list through the runtime for a fixed number of
frames. With --shuffle the rows are rotated every frame, exercising the
key-override matching path; without it every frame is a steady-state
positional match.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Passes, "passes", 1000, "number of frames to reconcile")
	cmd.Flags().IntVar(&cfg.Rows, "rows", 100, "rows in the synthetic list")
	cmd.Flags().BoolVar(&cfg.Shuffle, "shuffle", false, "rotate keyed rows every frame")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "also write JSON logs to this file")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", false, "log every frame")
	return cmd
}

// newLogger builds the slog fanout: human-readable text on stderr, plus an
// optional JSON file sink.
func newLogger(cfg runConfig) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	cleanup := func() {}
	if cfg.LogFile != "" {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		cleanup = func() { f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), cleanup, nil
}

func runBench(ctx context.Context, cfg runConfig) error {
	log, cleanup, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	rt := runtime.New(nil,
		runtime.WithLogger(log),
		runtime.WithMetrics(registry),
	)

	if cfg.MetricsAddr != "" {
		router := chi.NewRouter()
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			log.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, router); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	order := make([]int, cfg.Rows)
	for i := range order {
		order[i] = i
	}

	durations := make([]time.Duration, 0, cfg.Passes)
	for pass := 0; pass < cfg.Passes; pass++ {
		if cfg.Shuffle && cfg.Rows > 1 {
			// Rotate: every keyed row changes position every frame.
			order = append(order[1:], order[0])
		}
		start := time.Now()
		if err := rt.RenderFrame(ctx, listSpec(order, pass)); err != nil {
			return err
		}
		durations = append(durations, time.Since(start))
	}

	report(log, cfg, durations)
	return nil
}

// listSpec builds the frame's view: a scrollable container of keyed rows,
// each a container holding a label and an input.
func listSpec(order []int, pass int) view.Node {
	root := view.El(element.NewContainer().Scroll())
	for _, row := range order {
		key := fmt.Sprintf("row-%d", row)
		root = root.Push(
			view.El(element.NewContainer()).WithKey(key).
				Push(view.El(element.NewText(fmt.Sprintf("%s @%d", key, pass)))).
				Push(view.El(element.NewTextInput(""))),
		)
	}
	return root
}

func report(log *slog.Logger, cfg runConfig, durations []time.Duration) {
	if len(durations) == 0 {
		log.Info("bench complete", "passes", 0)
		return
	}
	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	pct := func(p float64) time.Duration {
		return sorted[int(p*float64(len(sorted)-1))]
	}
	log.Info("bench complete",
		"passes", cfg.Passes,
		"rows", cfg.Rows,
		"shuffle", cfg.Shuffle,
		"mean", total/time.Duration(len(sorted)),
		"p50", pct(0.50),
		"p95", pct(0.95),
		"p99", pct(0.99),
		"max", sorted[len(sorted)-1],
	)
}
