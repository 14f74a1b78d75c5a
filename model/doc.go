// Package model provides the geometric and structural primitives shared
// across the fusion pipeline.
//
// # Geometry
//
// [Rect] is an (x1, y1, x2, y2) rectangle in page-pixel coordinates. Its
// [Rect.Overlaps] and [Rect.Encloses] predicates implement the exact
// conventions the consolidation and expansion stages depend on: overlap is
// inclusive (a shared edge counts), containment is half-open.
//
// # Regions
//
// A [Region] is a labeled rectangle with a stable per-page ID and, after
// reading-order reconciliation, an order position. [Label] is a closed
// enumeration; each label carries a shorthand code for filenames and a
// consolidation [Role] so label-dependent branching stays in one place.
//
// [LineBox] values are raw line-level detections, used as consolidation
// input and table-cell candidates only.
//
// # Pages
//
// A [Page] owns the three rasters of one page (normal, denoised, raw) and
// defines the detection coordinate frame and the scale to the
// full-resolution export raster.
package model
