package render

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tsawler/mosaic/model"
)

func newTestExporter(dir string, longSide int) *Exporter {
	return NewExporter(ExportConfig{OutputDir: dir, TargetLongSide: longSide}, log.New(io.Discard))
}

func testPage(detW, detH, rawW, rawH int) *model.Page {
	normal := image.NewRGBA(image.Rect(0, 0, detW, detH))
	raw := image.NewRGBA(image.Rect(0, 0, rawW, rawH))
	return model.NewPage(0, normal, normal, raw)
}

func positioned(x1, y1, x2, y2 float64, label model.Label, id, position int) model.Region {
	r := model.NewRegion(model.NewRect(x1, y1, x2, y2), label)
	r.ID = id
	r.Position = position
	return r
}

func TestExportPageWritesCrops(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(dir, 100)
	page := testPage(100, 100, 200, 200)

	regions := []model.Region{
		positioned(0, 0, 50, 25, model.LabelTitle, 0, 0),
		positioned(0, 30, 50, 80, model.LabelText, 1, 1),
	}

	if err := e.ExportPage(page, regions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 crops, got %d", len(entries))
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	joined := strings.Join(names, " ")
	if !strings.Contains(joined, "0_0_i.png") {
		t.Errorf("Expected a Title crop 0_0_i.png, got %v", names)
	}
	if !strings.Contains(joined, "0_1_e.png") {
		t.Errorf("Expected a Text crop 0_1_e.png, got %v", names)
	}

	// The longest side of each crop matches the configured target.
	f, err := os.Open(filepath.Join(dir, "0_0_i.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest != 100 {
		t.Errorf("Expected longest side 100, got %dx%d", w, h)
	}
	// The Title crop is 100x50 detection pixels scaled 2x then resized:
	// aspect ratio is preserved.
	if w != 100 || h != 50 {
		t.Errorf("Expected 100x50 crop, got %dx%d", w, h)
	}
}

func TestExportPageSkipsDegenerateRegions(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(dir, 50)

	// Detection frame is 1000x1000 but raw is tiny, so a sub-pixel
	// region collapses to an empty rescaled rectangle.
	page := testPage(1000, 1000, 10, 10)
	regions := []model.Region{
		positioned(0, 0, 50, 50, model.LabelText, 0, 0), // rescales to 0x0
		positioned(0, 0, 500, 500, model.LabelText, 1, 1),
	}

	if err := e.ExportPage(page, regions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the valid region exported, got %d files", len(entries))
	}
}

func TestExportPageUsesCellFilename(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(dir, 50)
	page := testPage(100, 100, 100, 100)

	cell := positioned(10, 10, 40, 30, model.LabelTableCell, 0, 2)
	cell.Row = 1
	cell.Col = 3
	cell.Filename = "0_2_a_1_3.png"

	if err := e.ExportPage(page, []model.Region{cell}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "0_2_a_1_3.png")); err != nil {
		t.Errorf("Expected cell crop under its assigned filename: %v", err)
	}
}

func TestExportPagePadsPositions(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(dir, 50)
	page := testPage(100, 100, 100, 100)

	// 10 regions means two-digit padding.
	regions := make([]model.Region, 10)
	for i := range regions {
		x := float64(i * 10)
		regions[i] = positioned(x, 0, x+9, 50, model.LabelText, i, i)
	}

	if err := e.ExportPage(page, regions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "0_07_e.png")); err != nil {
		t.Errorf("Expected zero-padded filename 0_07_e.png: %v", err)
	}
}

func TestScaleToLongSideUpscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	out := scaleToLongSide(img, 1000)
	if out.Bounds().Dx() != 1000 || out.Bounds().Dy() != 500 {
		t.Errorf("Expected 1000x500, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Very thin images never collapse below one pixel.
	thin := image.NewRGBA(image.Rect(0, 0, 2000, 1))
	out = scaleToLongSide(thin, 100)
	if out.Bounds().Dy() != 1 {
		t.Errorf("Expected height clamped to 1, got %d", out.Bounds().Dy())
	}
}

func TestMatchSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 80))
	out := MatchSize(src, 100, 160)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 160 {
		t.Errorf("Expected 100x160, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Same-size input is returned as-is.
	if MatchSize(src, 50, 80) != image.Image(src) {
		t.Error("Expected same-size input to pass through")
	}
}
