package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// StatsColorScheme colors a stats block or a single stat.
type StatsColorScheme int

const (
	StatsColorSchemePrimary StatsColorScheme = iota + 1
	StatsColorSchemeSecondary
	StatsColorSchemeAccent
	StatsColorSchemeInfo
	StatsColorSchemeSuccess
	StatsColorSchemeWarning
	StatsColorSchemeError
)

// String returns the class token for c, or "" when unset.
func (c StatsColorScheme) String() string {
	switch c {
	case StatsColorSchemePrimary:
		return "stats-primary"
	case StatsColorSchemeSecondary:
		return "stats-secondary"
	case StatsColorSchemeAccent:
		return "stats-accent"
	case StatsColorSchemeInfo:
		return "stats-info"
	case StatsColorSchemeSuccess:
		return "stats-success"
	case StatsColorSchemeWarning:
		return "stats-warning"
	case StatsColorSchemeError:
		return "stats-error"
	}
	return ""
}

// StatsSize sets the stats size modifier.
type StatsSize int

const (
	StatsSizeSmall StatsSize = iota + 1
	StatsSizeMedium
	StatsSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s StatsSize) String() string {
	switch s {
	case StatsSizeSmall:
		return "stats-sm"
	case StatsSizeMedium:
		return "stats-md"
	case StatsSizeLarge:
		return "stats-lg"
	}
	return ""
}

// StatsProps configures Stats.
type StatsProps struct {
	ID          string
	Class       string
	ColorScheme StatsColorScheme
	Size        StatsSize
}

// Stats renders a row of StatsItem cells.
func Stats(p StatsProps, children ...any) *vdom.VNode {
	return element("div", classes("stats", p.ColorScheme.String(), p.Size.String(), p.Class), p.ID, children)
}

// StatsItemProps configures StatsItem.
type StatsItemProps struct {
	ID          string
	Class       string
	ColorScheme StatsColorScheme
}

// StatsItem renders one stat cell.
func StatsItem(p StatsItemProps, children ...any) *vdom.VNode {
	return element("div", classes("stat", p.ColorScheme.String(), p.Class), p.ID, children)
}

// StatsTitleProps configures StatsTitle.
type StatsTitleProps struct {
	ID    string
	Class string
}

// StatsTitle renders the stat label.
func StatsTitle(p StatsTitleProps, children ...any) *vdom.VNode {
	return simple("stat-title", p.ID, p.Class, children)
}

// StatsValueProps configures StatsValue.
type StatsValueProps struct {
	ID    string
	Class string
}

// StatsValue renders the headline number.
func StatsValue(p StatsValueProps, children ...any) *vdom.VNode {
	return simple("stat-value", p.ID, p.Class, children)
}

// StatsDescriptionProps configures StatsDescription.
type StatsDescriptionProps struct {
	ID    string
	Class string
}

// StatsDescription renders the small text under the value.
func StatsDescription(p StatsDescriptionProps, children ...any) *vdom.VNode {
	return simple("stat-desc", p.ID, p.Class, children)
}
