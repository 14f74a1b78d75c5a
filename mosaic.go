// Package mosaic fuses independently detected page region sets into one
// coherent, ordered set of regions per page and exports a crop of each.
//
// Per page, two region partitions are fused: a coarse layout partition
// computed from a denoised raster and a finer sparse-line partition
// computed from the unmodified raster. Fusion runs the stages
//
//	extraction -> label filter -> consolidation -> ID assignment ->
//	degenerate-page collapse -> reading-order reconciliation ->
//	gap-filling expansion -> table-cell decomposition -> crop export
//
// with the perception models (line detection, layout detection,
// reading-order prediction, table-cell recognition) supplied by the
// caller through the interfaces in the detect package.
//
// Basic usage:
//
//	cfg := mosaic.DefaultConfig()
//	cfg.Lines = myLineDetector
//	cfg.Layout = myLayoutDetector
//	cfg.Order = myOrderPredictor
//	cfg.Tables = myTablePredictor
//
//	p, err := mosaic.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//	regions, err := p.ProcessBatch(ctx, pages)
package mosaic

import (
	"github.com/charmbracelet/log"

	"github.com/tsawler/mosaic/detect"
	"github.com/tsawler/mosaic/layout"
	"github.com/tsawler/mosaic/render"
)

// Config holds the predictors and tuning options for a Pipeline.
type Config struct {
	// Lines, Layout and Order are required. Tables is optional; when nil,
	// Table regions are emitted whole instead of being decomposed.
	Lines  detect.LineDetector
	Layout detect.LayoutDetector
	Order  detect.OrderPredictor
	Tables detect.TablePredictor

	// Collapse configures the degenerate-page guard.
	Collapse layout.CollapseConfig

	// Export configures crop output.
	Export render.ExportConfig

	// DatasetMode enables the normalized-box manifest, written to
	// DatasetDir as {page}.boxes before expansion.
	DatasetMode bool
	DatasetDir  string

	// Workers bounds how many pages are processed concurrently.
	Workers int

	// Logger receives diagnostics. Nil falls back to log.Default().
	Logger *log.Logger
}

// DefaultConfig returns a configuration with standard tuning; the caller
// still has to supply the predictors.
func DefaultConfig() Config {
	return Config{
		Collapse:   layout.DefaultCollapseConfig(),
		Export:     render.DefaultExportConfig(),
		DatasetDir: ".",
		Workers:    4,
	}
}
