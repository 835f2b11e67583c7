package daisy

import (
	"strconv"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// DefaultRatingMax is the number of stars when RatingProps.Max is nil.
const DefaultRatingMax = 5

// RatingColorScheme sets the star color. Primary is the default.
type RatingColorScheme int

const (
	RatingColorSchemePrimary RatingColorScheme = iota
	RatingColorSchemeSecondary
	RatingColorSchemeWarning
	RatingColorSchemeSuccess
)

// String returns the class token for c.
func (c RatingColorScheme) String() string {
	switch c {
	case RatingColorSchemePrimary:
		return "rating-primary"
	case RatingColorSchemeSecondary:
		return "rating-secondary"
	case RatingColorSchemeWarning:
		return "rating-warning"
	case RatingColorSchemeSuccess:
		return "rating-success"
	}
	return ""
}

// RatingSize sets the star size.
type RatingSize int

const (
	RatingSizeDefault RatingSize = iota
	RatingSizeSmall
	RatingSizeMedium
	RatingSizeLarge
)

// String returns the class token for s.
func (s RatingSize) String() string {
	switch s {
	case RatingSizeSmall:
		return "rating-sm"
	case RatingSizeMedium:
		return "rating-md"
	case RatingSizeLarge:
		return "rating-lg"
	}
	return ""
}

// RatingProps configures Rating. ID also names the radio group, so two
// ratings on one page need distinct ids.
type RatingProps struct {
	ID          string
	Class       string
	ColorScheme RatingColorScheme
	Size        RatingSize
	Value       int
	Max         *int
	ReadOnly    bool
	Half        bool
}

// Rating renders Max star-shaped radio inputs, the first Value of them
// checked.
func Rating(p RatingProps) *vdom.VNode {
	count := DefaultRatingMax
	if p.Max != nil {
		count = max(*p.Max, 0)
	}

	cls := classes("rating", p.ColorScheme.String(), p.Size.String()).
		addIf(p.Half, "rating-half").
		add(p.Class)

	group := "rating-" + p.ID
	stars := make([]*vdom.VNode, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, vdom.Input(
			vdom.Type("radio"),
			vdom.Name(group),
			vdom.Class("mask", "mask-star"),
			vdom.AriaLabel(strconv.Itoa(i+1)+" star"),
			vdom.AttrIf(i < p.Value, vdom.Checked()),
			vdom.AttrIf(p.ReadOnly, vdom.Disabled()),
		))
	}
	return element("div", cls, p.ID, stars)
}
