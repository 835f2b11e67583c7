package daisy

import (
	"math"
	"strconv"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// DefaultProgressMax is the maximum used when ProgressProps.Max is nil.
const DefaultProgressMax = 100.0

// ProgressColorScheme sets the bar color. Primary is the default.
type ProgressColorScheme int

const (
	ProgressColorSchemePrimary ProgressColorScheme = iota
	ProgressColorSchemeSecondary
	ProgressColorSchemeAccent
	ProgressColorSchemeInfo
	ProgressColorSchemeSuccess
	ProgressColorSchemeWarning
	ProgressColorSchemeError
)

// String returns the class token for c.
func (c ProgressColorScheme) String() string {
	switch c {
	case ProgressColorSchemePrimary:
		return "progress-primary"
	case ProgressColorSchemeSecondary:
		return "progress-secondary"
	case ProgressColorSchemeAccent:
		return "progress-accent"
	case ProgressColorSchemeInfo:
		return "progress-info"
	case ProgressColorSchemeSuccess:
		return "progress-success"
	case ProgressColorSchemeWarning:
		return "progress-warning"
	case ProgressColorSchemeError:
		return "progress-error"
	}
	return ""
}

// ProgressSize sets the bar thickness.
type ProgressSize int

const (
	ProgressSizeDefault ProgressSize = iota
	ProgressSizeSmall
	ProgressSizeMedium
	ProgressSizeLarge
)

// String returns the class token for s.
func (s ProgressSize) String() string {
	switch s {
	case ProgressSizeSmall:
		return "progress-sm"
	case ProgressSizeMedium:
		return "progress-md"
	case ProgressSizeLarge:
		return "progress-lg"
	}
	return ""
}

// ProgressProps configures Progress. A nil Max means DefaultProgressMax.
type ProgressProps struct {
	ID            string
	Class         string
	ColorScheme   ProgressColorScheme
	Size          ProgressSize
	Value         float64
	Max           *float64
	Indeterminate bool
}

// Progress renders an ARIA progress bar. The fill width is Value/Max as
// a percentage clamped to [0, 100]; indeterminate bars carry no width.
func Progress(p ProgressProps) *vdom.VNode {
	limit := DefaultProgressMax
	if p.Max != nil {
		limit = *p.Max
	}

	cls := classes("progress", p.ColorScheme.String(), p.Size.String()).
		addIf(p.Indeterminate, "progress-indeterminate").
		add(p.Class)

	var style string
	if !p.Indeterminate {
		style = "width: " + strconv.FormatFloat(ProgressPercent(p.Value, limit), 'f', -1, 64) + "%"
	}

	return element("div", cls, p.ID,
		vdom.Role("progressbar"),
		vdom.AriaValueNow(p.Value),
		vdom.Attribute("aria-valuemin", "0"),
		vdom.AriaValueMax(limit),
		vdom.StringAttr("style", style),
	)
}

// ProgressPercent returns value/limit*100 clamped to [0, 100]. A NaN
// ratio (0/0) reports 100.
func ProgressPercent(value, limit float64) float64 {
	pct := value / limit * 100
	if math.IsNaN(pct) {
		return 100
	}
	return math.Max(0, math.Min(100, pct))
}
