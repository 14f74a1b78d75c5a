package model

import (
	"image"
	"image/draw"
)

// Page is the unit of processing. It owns three rasters of the same page:
// Normal (the unmodified raster the sparse detectors run on, which also
// defines the detection coordinate frame), Denoised (the cleaned raster
// the layout detector runs on, same size as Normal), and Raw (the
// full-resolution raster crops are exported from). A page owns its region
// lists exclusively; they never outlive the page's processing pass.
type Page struct {
	Number   int // zero-based page index within the batch
	Normal   image.Image
	Denoised image.Image
	Raw      image.Image
}

// NewPage creates a page from its three rasters.
func NewPage(number int, normal, denoised, raw image.Image) *Page {
	return &Page{Number: number, Normal: normal, Denoised: denoised, Raw: raw}
}

// DetectionWidth returns the width of the detection coordinate frame.
func (p *Page) DetectionWidth() int {
	return p.Normal.Bounds().Dx()
}

// DetectionHeight returns the height of the detection coordinate frame.
func (p *Page) DetectionHeight() int {
	return p.Normal.Bounds().Dy()
}

// Bounds returns the page's bounding rectangle in the detection frame.
func (p *Page) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: float64(p.DetectionWidth()), Y2: float64(p.DetectionHeight())}
}

// ScaleX returns the horizontal scale factor from the detection frame to
// the full-resolution export raster.
func (p *Page) ScaleX() float64 {
	return float64(p.Raw.Bounds().Dx()) / float64(p.DetectionWidth())
}

// ScaleY returns the vertical scale factor from the detection frame to
// the full-resolution export raster.
func (p *Page) ScaleY() float64 {
	return float64(p.Raw.Bounds().Dy()) / float64(p.DetectionHeight())
}

// CropDetection crops the Normal raster at r, truncating coordinates to
// integers. The returned image has its origin at (0,0).
func (p *Page) CropDetection(r Rect) image.Image {
	return cropImage(p.Normal, r)
}

// CropRaw crops the full-resolution raster at r, which must already be in
// raw-raster coordinates.
func (p *Page) CropRaw(r Rect) image.Image {
	return cropImage(p.Raw, r)
}

func cropImage(src image.Image, r Rect) image.Image {
	b := src.Bounds()
	x1 := b.Min.X + int(r.X1)
	y1 := b.Min.Y + int(r.Y1)
	x2 := b.Min.X + int(r.X2)
	y2 := b.Min.Y + int(r.Y2)
	rect := image.Rect(x1, y1, x2, y2).Intersect(b)
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out
}
