package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adeel-ahmed99/poker-hands/cmd/poker-hands/shared"
	"github.com/adeel-ahmed99/poker-hands/internal/batch"
	"github.com/adeel-ahmed99/poker-hands/internal/report"
	"github.com/adeel-ahmed99/poker-hands/internal/runid"
)

// BatchCmd evaluates a file of deals.
type BatchCmd struct {
	File    string `arg:"" name:"file" help:"Deals file, one deal per line ('-' reads stdin)"`
	Workers int    `short:"w" help:"Deals evaluated in parallel (overrides config)"`
	Report  string `short:"r" help:"Write a TOML report to this path (overrides config)"`
}

func (c *BatchCmd) Run(g *Globals) error {
	cfg, logger, err := g.Setup()
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	reportPath := cfg.Batch.Report
	if c.Report != "" {
		reportPath = c.Report
	}

	lines, err := readDealsFile(c.File)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	runner := batch.NewRunner(logger, batch.WithWorkers(workers))
	res, err := runner.Run(ctx, lines)
	if err != nil {
		return err
	}

	if err := renderTally(g.Out(), res.Tally, res.Elapsed); err != nil {
		return err
	}

	if reportPath == "" {
		return nil
	}

	id, err := runid.New()
	if err != nil {
		return err
	}
	if err := runid.Validate(id); err != nil {
		return fmt.Errorf("generated run ID: %w", err)
	}
	doc := buildReport(id, res, cfg.Output.SplitTies)
	if err := report.WriteFile(reportPath, doc); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("Wrote report", "path", reportPath, "runID", id)
	return nil
}

func readDealsFile(path string) ([]batch.Line, error) {
	if path == "-" {
		return batch.ReadDeals(os.Stdin)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.ReadDeals(f)
}

func buildReport(id string, res *batch.Result, splitTies bool) *report.Report {
	doc := &report.Report{
		RunID:     id,
		Generated: res.Started.UTC(),
		Elapsed:   res.Elapsed.Truncate(time.Microsecond).String(),
		Summary:   report.NewSummary(res.Tally),
		Deals:     make([]report.Deal, 0, len(res.Records)),
	}
	for _, rec := range res.Records {
		if rec.Err != nil {
			doc.Deals = append(doc.Deals, report.NewErrorDeal(rec.Line, rec.Values, rec.Err))
			continue
		}
		doc.Deals = append(doc.Deals, report.NewDeal(rec.Line, rec.Showdown, splitTies))
	}
	return doc
}
