package mosaic

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/mosaic/detect"
	"github.com/tsawler/mosaic/layout"
	"github.com/tsawler/mosaic/model"
	"github.com/tsawler/mosaic/render"
	"github.com/tsawler/mosaic/tables"
)

// ErrMissingPredictor is returned by New when a required predictor is nil.
var ErrMissingPredictor = errors.New("mosaic: line, layout and order predictors are required")

// ErrBatchShape is returned when a predictor violates its contract by
// returning a result batch whose length differs from the input batch.
var ErrBatchShape = errors.New("mosaic: predictor batch length mismatch")

// Pipeline runs the fusion stages over batches of pages. Pages in a batch
// are independent: each owns its region lists, so they are processed
// concurrently without locking.
type Pipeline struct {
	cfg      Config
	logger   *log.Logger
	exporter *render.Exporter
}

// New creates a Pipeline from cfg.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Lines == nil || cfg.Layout == nil || cfg.Order == nil {
		return nil, ErrMissingPredictor
	}
	if cfg.Collapse.Threshold <= 0 {
		cfg.Collapse = layout.DefaultCollapseConfig()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.DatasetDir == "" {
		cfg.DatasetDir = "."
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		exporter: render.NewExporter(cfg.Export, logger),
	}, nil
}

// ProcessBatch fuses, orders, expands, decomposes, and exports every page
// in the batch, returning the final region list per page, index-aligned
// with pages.
//
// Predictor calls are batched, blocking, and atomic: the context is
// checked between stages but never cancels a call in flight. A predictor
// contract violation (batch shape mismatch) or a batch-wide predictor
// failure aborts the whole batch; everything else — degenerate
// geometry, reconciliation misses, table recognition failure, a page
// failing to export — is logged and degrades locally without touching
// sibling pages.
func (p *Pipeline) ProcessBatch(ctx context.Context, pages []*model.Page) ([][]model.Region, error) {
	if len(pages) == 0 {
		return nil, nil
	}

	normal := make([]image.Image, len(pages))
	denoised := make([]image.Image, len(pages))
	for i, page := range pages {
		normal[i] = page.Normal
		d := page.Denoised
		if d == nil {
			d = page.Normal
		}
		denoised[i] = render.MatchSize(d, page.DetectionWidth(), page.DetectionHeight())
	}

	denseLines, err := p.detectLines(ctx, denoised, len(pages))
	if err != nil {
		return nil, err
	}
	sparseLines, err := p.detectLines(ctx, normal, len(pages))
	if err != nil {
		return nil, err
	}
	layoutSets, err := p.detectLayout(ctx, denoised, denseLines, len(pages))
	if err != nil {
		return nil, err
	}
	sparseSets, err := p.detectLayout(ctx, normal, sparseLines, len(pages))
	if err != nil {
		return nil, err
	}

	consolidated := make([][]model.Region, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i := range pages {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			consolidated[i] = p.consolidatePage(pages[i], sparseSets[i], layoutSets[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The order predictor runs against a proxy copy of each page's
	// rectangles; the proxy is coordinate-identical by construction, so
	// reconciliation can match by exact value.
	proxies := make([][]model.Rect, len(pages))
	for i, regions := range consolidated {
		rects := make([]model.Rect, len(regions))
		for j, r := range regions {
			rects[j] = r.Rect
		}
		proxies[i] = rects
	}

	orders, err := p.cfg.Order.PredictOrder(ctx, normal, proxies)
	if err != nil {
		return nil, fmt.Errorf("reading-order prediction: %w", err)
	}
	if len(orders) != len(pages) {
		return nil, fmt.Errorf("%w: %d order results for %d pages", ErrBatchShape, len(orders), len(pages))
	}

	results := make([][]model.Region, len(pages))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i := range pages {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = p.finishPage(gctx, pages[i], consolidated[i], orders[i], sparseLines[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pipeline) detectLines(ctx context.Context, images []image.Image, want int) ([]detect.LineSet, error) {
	lines, err := p.cfg.Lines.DetectLines(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("line detection: %w", err)
	}
	if len(lines) != want {
		return nil, fmt.Errorf("%w: %d line sets for %d pages", ErrBatchShape, len(lines), want)
	}
	return lines, nil
}

func (p *Pipeline) detectLayout(ctx context.Context, images []image.Image, lines []detect.LineSet, want int) ([]detect.RegionSet, error) {
	sets, err := p.cfg.Layout.DetectLayout(ctx, images, lines)
	if err != nil {
		return nil, fmt.Errorf("layout detection: %w", err)
	}
	if len(sets) != want {
		return nil, fmt.Errorf("%w: %d region sets for %d pages", ErrBatchShape, len(sets), want)
	}
	return sets, nil
}

// consolidatePage runs extraction through the degeneracy guard for one
// page.
func (p *Pipeline) consolidatePage(page *model.Page, sparseSet, layoutSet detect.RegionSet) []model.Region {
	sparse, sparseDropped := layout.ExtractRegions(sparseSet)
	layoutRegions, layoutDropped := layout.ExtractRegions(layoutSet)
	if sparseDropped+layoutDropped > 0 {
		p.logger.Warn("discarded invalid detection rectangles",
			"page", page.Number, "count", sparseDropped+layoutDropped)
	}

	regions := layout.Consolidate(layout.FilterText(sparse), layoutRegions)
	regions = layout.AssignIDs(regions)

	collapsed := layout.CollapseIfOverSegmented(regions, p.cfg.Collapse)
	if len(collapsed) != len(regions) {
		p.logger.Info("collapsed over-segmented page",
			"page", page.Number, "regions", len(regions))
	}
	return collapsed
}

// finishPage runs reconciliation through export for one page. Failures
// past reconciliation degrade locally and are logged; the page still
// contributes its best-effort region list.
func (p *Pipeline) finishPage(ctx context.Context, page *model.Page, regions []model.Region, order detect.OrderResult, sparseLines detect.LineSet) []model.Region {
	ordered := layout.ReconcileOrder(regions, order)
	if ordered.Dropped > 0 {
		p.logger.Warn("reading-order entries had no matching region",
			"page", page.Number, "dropped", ordered.Dropped)
	}

	width := float64(page.DetectionWidth())
	height := float64(page.DetectionHeight())

	if p.cfg.DatasetMode {
		// Manifest filenames are 1-indexed and record the pre-expansion
		// geometry.
		path := filepath.Join(p.cfg.DatasetDir, fmt.Sprintf("%d.boxes", page.Number+1))
		if err := render.WriteManifest(path, ordered.Regions, width, height); err != nil {
			p.logger.Error("writing dataset manifest", "page", page.Number, "error", err)
		}
	}

	expanded := layout.Expand(ordered.Regions, width, height)

	final, err := tables.Decompose(ctx, page, expanded, sparseLines.Lines, p.cfg.Tables)
	if err != nil {
		p.logger.Warn("table decomposition failed, keeping whole tables",
			"page", page.Number, "error", err)
	}

	if err := p.exporter.ExportPage(page, final); err != nil {
		p.logger.Error("exporting region crops", "page", page.Number, "error", err)
	}
	return final
}
