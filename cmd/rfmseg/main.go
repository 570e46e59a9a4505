// Command rfmseg runs the RFM segmentation pipeline from the shell:
// transactions CSV in, cluster assignments CSV plus fitted artifacts
// JSON out, or a k-selection diagnostics table for choosing k.
//
// Modes (config key "mode"):
//
//	segment – aggregate, scale, cluster with the configured k, write
//	          customer_id,cluster,recency,frequency,monetary rows and
//	          the scaler/centroid artifacts.
//	sweep   – print inertia and silhouette for each k in
//	          [sweep_min, sweep_max]; pick k by eye, then run segment.
//
// Configuration is layered (defaults < rfmseg.yaml < RFMSEG_* env);
// see config.go.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rfmseg/kselect"
	"github.com/katalvlaran/rfmseg/rfm"
	"github.com/katalvlaran/rfmseg/scale"
	"github.com/katalvlaran/rfmseg/segment"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rfmseg: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// newLogger builds the zerolog logger from config: console for humans,
// JSON for machines.
func newLogger(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.LogFormat == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return log.Level(level).With().Timestamp().Logger()
}

func run(cfg *Config, log zerolog.Logger) error {
	txns, err := readTransactions(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().Int("transactions", len(txns)).Str("input", cfg.Input).Msg("loaded transactions")

	switch cfg.Mode {
	case "sweep":
		return runSweep(cfg, log, txns)
	default:
		return runSegment(cfg, log, txns)
	}
}

// runSweep prints the k-selection diagnostics table. Choosing k stays
// with the operator; the elbow has no single correct detector.
func runSweep(cfg *Config, log zerolog.Logger, txns []rfm.Transaction) error {
	opts, err := aggregateOptions(cfg)
	if err != nil {
		return err
	}
	records, err := rfm.Aggregate(txns, opts...)
	if err != nil {
		return err
	}
	_, vectors, err := scale.FitTransform(records)
	if err != nil {
		return err
	}

	diags, err := kselect.Sweep(scale.Matrix(vectors), cfg.SweepMin, cfg.SweepMax,
		kselect.WithSeed(cfg.Seed),
		kselect.WithNumInit(cfg.NumInit),
	)
	if err != nil {
		return err
	}

	fmt.Println("   k      inertia   silhouette")
	for _, d := range diags {
		fmt.Printf("%4d %12.4f %12.4f\n", d.K, d.Inertia, d.Silhouette)
	}
	log.Info().Int("customers", len(records)).
		Int("k_min", cfg.SweepMin).Int("k_max", cfg.SweepMax).
		Msg("sweep complete; pick k and re-run in segment mode")
	return nil
}

// runSegment executes the full pipeline and writes outputs.
func runSegment(cfg *Config, log zerolog.Logger, txns []rfm.Transaction) error {
	runCfg := segment.DefaultConfig(cfg.K)
	runCfg.Seed = cfg.Seed
	runCfg.NumInit = cfg.NumInit
	runCfg.Logger = log
	if cfg.DropInvalidRows {
		runCfg.RowPolicy = rfm.DropRows
	}
	if cfg.Snapshot != "" {
		snapshot, err := parseDate(cfg.Snapshot)
		if err != nil {
			return fmt.Errorf("snapshot %q: %w", cfg.Snapshot, err)
		}
		runCfg.Snapshot = snapshot
	}

	started := time.Now()
	res, err := segment.Run(txns, runCfg)
	if err != nil {
		return err
	}

	if err := writeRows(cfg.Output, res.Rows()); err != nil {
		return err
	}
	f, err := os.Create(cfg.Artifacts)
	if err != nil {
		return fmt.Errorf("create artifacts: %w", err)
	}
	defer f.Close()
	if err := segment.SaveArtifacts(f, res.Artifacts); err != nil {
		return err
	}

	log.Info().
		Int("customers", len(res.Records)).
		Int("clusters", len(res.Profiles)).
		Float64("inertia", res.Inertia).
		Dur("elapsed", time.Since(started)).
		Str("output", cfg.Output).
		Str("artifacts", cfg.Artifacts).
		Msg("segmentation complete")
	return nil
}

// aggregateOptions maps CLI config onto rfm options.
func aggregateOptions(cfg *Config) ([]rfm.Option, error) {
	opts := []rfm.Option{}
	if cfg.DropInvalidRows {
		opts = append(opts, rfm.WithRowPolicy(rfm.DropRows))
	}
	if cfg.Snapshot != "" {
		snapshot, err := parseDate(cfg.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", cfg.Snapshot, err)
		}
		opts = append(opts, rfm.WithSnapshot(snapshot))
	}
	return opts, nil
}
