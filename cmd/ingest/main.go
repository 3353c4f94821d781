// Command ingest loads a UniMorph-style TSV corpus (lemma, inflected form,
// feature tags per line) into the word forms table, then rebuilds the lemma
// summary table. It is the single writer of morphological data; the server
// only reads.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/lingo-polska/core/internal/config"
	"github.com/lingo-polska/core/internal/database"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/modules/morphology"
	"github.com/lingo-polska/core/internal/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	corpusPath := flag.String("file", "", "Path to the TSV corpus (lemma<TAB>form<TAB>tags)")
	skipSummaries := flag.Bool("skip-summaries", false, "Skip the lemma summary rebuild after ingestion")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *corpusPath == "" {
		logger.Fatal("--file is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	store := morphology.NewStore(db)

	f, err := os.Open(*corpusPath)
	if err != nil {
		logger.Fatal("open corpus", zap.Error(err))
	}
	defer f.Close()

	ctx := context.Background()
	start := time.Now()
	batchSize := cfg.Ingest.BatchSize

	var (
		batch   []models.WordFormModel
		total   int
		skipped int
		lineNo  int
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := store.BulkUpsert(ctx, batch); err != nil {
			logger.Fatal("bulk upsert", zap.Error(err), zap.Int("line", lineNo))
		}
		total += len(batch)
		metrics.IngestedForms.Add(float64(len(batch)))
		batch = batch[:0]
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			skipped++
			continue
		}

		lemma := morphology.Normalize(fields[0])
		form := morphology.Normalize(fields[1])
		tags := strings.TrimSpace(fields[2])
		if lemma == "" || form == "" || tags == "" {
			skipped++
			continue
		}

		row := models.WordFormModel{
			Lemma:         lemma,
			InflectedForm: form,
			RawFeatures:   tags,
		}
		morphology.ParseFeatures(tags).Apply(&row)
		batch = append(batch, row)

		if len(batch) >= batchSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("read corpus", zap.Error(err), zap.Int("line", lineNo))
	}
	flush()

	if !*skipSummaries {
		if err := store.RebuildSummaries(ctx); err != nil {
			logger.Fatal("rebuild summaries", zap.Error(err))
		}
	}

	logger.Info("ingestion complete",
		zap.Int("forms", total),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(start)),
	)
}
