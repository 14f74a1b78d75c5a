package model

// Label identifies the structural type of a page region. The set is
// closed: predictors emit label strings which are parsed through
// ParseLabel, and anything unrecognized maps to LabelUnknown.
type Label int

const (
	LabelUnknown Label = iota
	LabelCaption
	LabelFootnote
	LabelFormula
	LabelListItem
	LabelPageFooter
	LabelPageHeader
	LabelPicture
	LabelFigure
	LabelSectionHeader
	LabelTable
	LabelText
	LabelTitle
	// LabelTableCell is synthesized by table decomposition; predictors
	// never emit it directly.
	LabelTableCell
)

// Role describes how a label participates in consolidation and expansion.
type Role int

const (
	// RolePlain regions take no special part in consolidation.
	RolePlain Role = iota
	// RoleStructural labels (titles, headers, list items) override layout
	// boxes they overlap and dominate in height.
	RoleStructural
	// RoleEncapsulating labels (tables, captions, footnotes, footers)
	// override layout boxes they fully enclose.
	RoleEncapsulating
	// RolePictorial labels are frozen during gap-filling expansion.
	RolePictorial
)

var labelNames = map[Label]string{
	LabelCaption:       "Caption",
	LabelFootnote:      "Footnote",
	LabelFormula:       "Formula",
	LabelListItem:      "List-item",
	LabelPageFooter:    "Page-footer",
	LabelPageHeader:    "Page-header",
	LabelPicture:       "Picture",
	LabelFigure:        "Figure",
	LabelSectionHeader: "Section-header",
	LabelTable:         "Table",
	LabelText:          "Text",
	LabelTitle:         "Title",
	LabelTableCell:     "table-cell",
}

var labelShorts = map[Label]string{
	LabelCaption:       "c",
	LabelFootnote:      "fo",
	LabelFormula:       "fr",
	LabelListItem:      "l",
	LabelPageFooter:    "pf",
	LabelPageHeader:    "ph",
	LabelPicture:       "p",
	LabelFigure:        "f",
	LabelSectionHeader: "s",
	LabelTable:         "a",
	LabelText:          "e",
	LabelTitle:         "i",
	LabelTableCell:     "a",
}

var labelByName = func() map[string]Label {
	m := make(map[string]Label, len(labelNames))
	for l, name := range labelNames {
		m[name] = l
	}
	return m
}()

// ParseLabel maps a predictor label string onto the closed label set.
func ParseLabel(s string) Label {
	if l, ok := labelByName[s]; ok {
		return l
	}
	return LabelUnknown
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Short returns the single-character code used in exported filenames.
func (l Label) Short() string {
	if s, ok := labelShorts[l]; ok {
		return s
	}
	return "u"
}

// Role returns the label's consolidation role.
func (l Label) Role() Role {
	switch l {
	case LabelTitle, LabelSectionHeader, LabelPageHeader, LabelListItem:
		return RoleStructural
	case LabelTable, LabelCaption, LabelFootnote, LabelPageFooter:
		return RoleEncapsulating
	case LabelPicture, LabelFigure:
		return RolePictorial
	default:
		return RolePlain
	}
}

// Region is a labeled rectangular area of a page. ID is assigned once per
// page and never changes; Position is -1 until reading-order
// reconciliation stamps it.
type Region struct {
	Rect     Rect
	Label    Label
	ID       int
	Position int

	// Row, Col and Filename are set only on table-cell regions produced
	// by decomposition.
	Row      int
	Col      int
	Filename string
}

// NewRegion creates a region with no identity or order position yet.
func NewRegion(rect Rect, label Label) Region {
	return Region{Rect: rect, Label: label, ID: -1, Position: -1}
}

// LineBox is a single line-level detection: a rectangle plus the
// detector's confidence. Line boxes feed consolidation and serve as
// table-cell candidates; they are never emitted as final regions.
type LineBox struct {
	Rect       Rect
	Confidence float64
}

// TableCell is a recognized table cell in the parent table's local
// coordinate frame.
type TableCell struct {
	Rect Rect
	Row  int
	Col  int
}
