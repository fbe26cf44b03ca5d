// Package converter implements the Shopify-export-to-Medusa-seed
// transformation: grouping variant rows into products, deriving the
// destination fields, and flattening the result back to one row per
// variant.
package converter

import (
	"errors"
	"fmt"
	"os"

	"medusaseed/internal/config"
	"medusaseed/internal/csvio"
	"medusaseed/internal/formatter"
	"medusaseed/internal/logger"
	"medusaseed/internal/models"
)

// Fatal pipeline errors. Only load-time failures abort a run; every
// per-row anomaly is normalized to a safe default instead.
var (
	// ErrInputNotFound means the source path does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrInputUnreadable means the source exists but could not be loaded
	// as a CSV table.
	ErrInputUnreadable = errors.New("input file could not be read")
)

// Summary reports the outcome of a successful run.
type Summary struct {
	RowsRead   int
	Products   int
	OutputPath string
	// Preview is a fixed-width rendering of the first few output rows,
	// empty when previewing is disabled.
	Preview string
}

// Pipeline orchestrates one conversion run: load, consolidate, write.
type Pipeline struct {
	cfg          *config.Config
	log          *logger.Logger
	consolidator *Consolidator
	writer       *csvio.Writer
}

// NewPipeline creates a pipeline from the loaded configuration.
func NewPipeline(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:          cfg,
		log:          log,
		consolidator: NewConsolidator(cfg),
		writer:       csvio.NewWriter(cfg.Pricing),
	}
}

// Run converts one Shopify export into one Medusa seed file. The whole
// input is loaded and consolidated in memory before any output is created,
// so a failed run never leaves a partial seed file behind.
func (p *Pipeline) Run(inputPath, outputPath string) (Summary, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}

		return Summary{}, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}

	rows, err := csvio.ReadRows(inputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}

	p.log.Info("loaded export", "path", inputPath, "rows", len(rows))

	records, products := p.consolidator.Consolidate(rows)

	p.log.Debug("consolidated rows", "products", products)

	if err := p.writer.WriteRecords(outputPath, records); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RowsRead:   len(rows),
		Products:   products,
		OutputPath: outputPath,
	}

	if n := p.cfg.Output.PreviewRows; n > 0 {
		summary.Preview = p.preview(records, n)
	}

	return summary, nil
}

func (p *Pipeline) preview(records []models.OutputRecord, n int) string {
	if n > len(records) {
		n = len(records)
	}

	rows := make([][]string, 0, n)
	for _, rec := range records[:n] {
		rows = append(rows, p.writer.Record(rec))
	}

	return formatter.PreviewTable(p.writer.Columns(), rows)
}
