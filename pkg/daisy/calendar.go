package daisy

import (
	"strconv"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// CalendarColor sets the calendar accent color.
type CalendarColor int

const (
	CalendarColorPrimary CalendarColor = iota + 1
	CalendarColorSecondary
	CalendarColorAccent
	CalendarColorInfo
	CalendarColorSuccess
	CalendarColorWarning
	CalendarColorError
)

// String returns the class token for c, or "" when unset.
func (c CalendarColor) String() string {
	switch c {
	case CalendarColorPrimary:
		return "calendar-primary"
	case CalendarColorSecondary:
		return "calendar-secondary"
	case CalendarColorAccent:
		return "calendar-accent"
	case CalendarColorInfo:
		return "calendar-info"
	case CalendarColorSuccess:
		return "calendar-success"
	case CalendarColorWarning:
		return "calendar-warning"
	case CalendarColorError:
		return "calendar-error"
	}
	return ""
}

// CalendarSize sets the calendar size modifier.
type CalendarSize int

const (
	CalendarSizeSmall CalendarSize = iota + 1
	CalendarSizeMedium
	CalendarSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s CalendarSize) String() string {
	switch s {
	case CalendarSizeSmall:
		return "calendar-sm"
	case CalendarSizeMedium:
		return "calendar-md"
	case CalendarSizeLarge:
		return "calendar-lg"
	}
	return ""
}

// CalendarProps configures Calendar.
type CalendarProps struct {
	ID    string
	Class string
	Color CalendarColor
	Size  CalendarSize
}

// Calendar is the outer container of a month grid. Compose it from
// CalendarHeader, CalendarBody, CalendarWeekday and CalendarDay.
func Calendar(p CalendarProps, children ...any) *vdom.VNode {
	cls := classes("calendar", p.Color.String(), p.Size.String(), p.Class)
	return element("div", cls, p.ID, children)
}

// CalendarHeaderProps configures CalendarHeader.
type CalendarHeaderProps struct {
	ID    string
	Class string
}

// CalendarHeader renders the month and navigation row.
func CalendarHeader(p CalendarHeaderProps, children ...any) *vdom.VNode {
	return simple("calendar-header", p.ID, p.Class, children)
}

// CalendarBodyProps configures CalendarBody.
type CalendarBodyProps struct {
	ID    string
	Class string
}

// CalendarBody renders the grid holding weekdays and days.
func CalendarBody(p CalendarBodyProps, children ...any) *vdom.VNode {
	return simple("calendar-body", p.ID, p.Class, children)
}

// CalendarWeekdayProps configures CalendarWeekday.
type CalendarWeekdayProps struct {
	ID    string
	Class string
}

// CalendarWeekday renders one weekday label.
func CalendarWeekday(p CalendarWeekdayProps, children ...any) *vdom.VNode {
	return simple("calendar-weekday", p.ID, p.Class, children)
}

// CalendarDayProps configures CalendarDay. Day is written to data-day.
type CalendarDayProps struct {
	ID       string
	Class    string
	Day      int
	Selected bool
	Today    bool
	Disabled bool
}

// CalendarDay renders one day cell. The day number is exposed as
// data-day; visible content comes from children.
func CalendarDay(p CalendarDayProps, children ...any) *vdom.VNode {
	cls := classes("calendar-day").
		addIf(p.Selected, "calendar-day-selected").
		addIf(p.Today, "calendar-day-today").
		addIf(p.Disabled, "calendar-day-disabled").
		add(p.Class)
	return element("div", cls, p.ID,
		vdom.Attribute("data-day", strconv.Itoa(p.Day)),
		children,
	)
}
