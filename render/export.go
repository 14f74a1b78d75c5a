// Package render maps final page regions back to the full-resolution
// raster and writes one crop per region, plus the optional dataset-mode
// manifest of normalized boxes.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/tsawler/mosaic/model"
)

// ExportConfig holds configuration for region crop export.
type ExportConfig struct {
	// OutputDir is the directory crops are written to. It is created if
	// it does not exist.
	OutputDir string

	// TargetLongSide is the length the longest side of every crop is
	// resized to, aspect-preserving, before writing. Default 1000.
	TargetLongSide int
}

// DefaultExportConfig returns the standard export configuration.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		OutputDir:      "regionimages",
		TargetLongSide: 1000,
	}
}

// Exporter writes region crops from a page's full-resolution raster.
type Exporter struct {
	cfg    ExportConfig
	logger *log.Logger
}

// NewExporter creates an exporter. A nil logger falls back to the
// package-level default.
func NewExporter(cfg ExportConfig, logger *log.Logger) *Exporter {
	if cfg.TargetLongSide <= 0 {
		cfg.TargetLongSide = DefaultExportConfig().TargetLongSide
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Exporter{cfg: cfg, logger: logger}
}

// ExportPage rescales every region from the detection frame to the
// full-resolution raster, crops it, resizes the crop so its longest side
// equals the configured target, and writes it as a PNG.
//
// Regions whose rescaled rectangle is empty or inverted are skipped with
// a diagnostic; processing continues with the remaining regions. A write
// failure aborts the page and is returned to the caller.
func (e *Exporter) ExportPage(page *model.Page, regions []model.Region) error {
	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	sx := page.ScaleX()
	sy := page.ScaleY()
	digits := len(strconv.Itoa(len(regions)))

	for _, r := range regions {
		// Truncate to whole raw-raster pixels, as crops are.
		x1 := float64(int(r.Rect.X1 * sx))
		y1 := float64(int(r.Rect.Y1 * sy))
		x2 := float64(int(r.Rect.X2 * sx))
		y2 := float64(int(r.Rect.Y2 * sy))
		if x2 <= x1 || y2 <= y1 {
			e.logger.Warn("skipping region with empty rescaled rectangle",
				"page", page.Number, "id", r.ID, "label", r.Label.String())
			continue
		}

		crop := page.CropRaw(model.NewRect(x1, y1, x2, y2))
		resized := scaleToLongSide(crop, e.cfg.TargetLongSide)
		if resized == nil {
			e.logger.Warn("skipping region with empty crop",
				"page", page.Number, "id", r.ID, "label", r.Label.String())
			continue
		}

		name := regionFilename(page.Number, r, digits)
		if err := writePNG(filepath.Join(e.cfg.OutputDir, name), resized); err != nil {
			return fmt.Errorf("writing region crop %s: %w", name, err)
		}
	}
	return nil
}

// regionFilename names a crop: table cells keep the filename assigned by
// decomposition, everything else encodes page, zero-padded order
// position, and the shortened label code. The padding width is the digit
// count of the page's region total.
func regionFilename(pageNumber int, r model.Region, digits int) string {
	if r.Filename != "" {
		return r.Filename
	}
	position := r.Position
	if position < 0 {
		position = 0
	}
	return fmt.Sprintf("%d_%0*d_%s.png", pageNumber, digits, position, r.Label.Short())
}

// scaleToLongSide resizes img aspect-preserving so its longest side
// equals target. Returns nil for a degenerate source image.
func scaleToLongSide(img image.Image, target int) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= 0 {
		return nil
	}

	factor := float64(target) / float64(longest)
	nw := int(float64(w) * factor)
	nh := int(float64(h) * factor)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// MatchSize resizes src to width x height. The pipeline uses it to bring
// the denoised raster onto the detection frame when the two differ.
func MatchSize(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
