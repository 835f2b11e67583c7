package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// TableSize sets the cell padding scale.
type TableSize int

const (
	TableSizeDefault TableSize = iota
	TableSizeExtraSmall
	TableSizeSmall
	TableSizeMedium
	TableSizeLarge
	TableSizeExtraLarge
)

// String returns the class token for s.
func (s TableSize) String() string {
	switch s {
	case TableSizeExtraSmall:
		return "table-xs"
	case TableSizeSmall:
		return "table-sm"
	case TableSizeMedium:
		return "table-md"
	case TableSizeLarge:
		return "table-lg"
	case TableSizeExtraLarge:
		return "table-xl"
	}
	return ""
}

// TableProps configures Table. Flags add tokens in field order.
type TableProps struct {
	ID       string
	Class    string
	Size     TableSize
	Zebra    bool
	PinRows  bool
	PinCols  bool
	RowHover bool
}

// Table renders a styled <table>. Children are the caller's thead, tbody
// and rows.
func Table(p TableProps, children ...any) *vdom.VNode {
	cls := classes("table", p.Size.String()).
		addIf(p.Zebra, "table-zebra").
		addIf(p.PinRows, "table-pin-rows").
		addIf(p.PinCols, "table-pin-cols").
		addIf(p.RowHover, "row-hover").
		add(p.Class)
	return element("table", cls, p.ID, children)
}
