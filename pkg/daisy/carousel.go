package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// DefaultCarouselInterval is the autoplay interval in milliseconds used
// when CarouselProps.Interval is zero.
const DefaultCarouselInterval = 5000

// CarouselColor sets the carousel color.
type CarouselColor int

const (
	CarouselColorNeutral CarouselColor = iota + 1
	CarouselColorPrimary
	CarouselColorSecondary
)

// String returns the class token for c, or "" when unset.
func (c CarouselColor) String() string {
	switch c {
	case CarouselColorNeutral:
		return "carousel-neutral"
	case CarouselColorPrimary:
		return "carousel-primary"
	case CarouselColorSecondary:
		return "carousel-secondary"
	}
	return ""
}

// CarouselSize sets the carousel size modifier.
type CarouselSize int

const (
	CarouselSizeSmall CarouselSize = iota + 1
	CarouselSizeMedium
	CarouselSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s CarouselSize) String() string {
	switch s {
	case CarouselSizeSmall:
		return "carousel-sm"
	case CarouselSizeMedium:
		return "carousel-md"
	case CarouselSizeLarge:
		return "carousel-lg"
	}
	return ""
}

// CarouselProps configures Carousel.
type CarouselProps struct {
	ID           string
	Class        string
	Color        CarouselColor
	Size         CarouselSize
	AutoPlay     bool
	Infinite     bool
	PauseOnHover bool

	// Interval is the autoplay delay in milliseconds.
	Interval int

	// ShowNav and ShowIndicators are read by client scripts only.
	ShowNav        bool
	ShowIndicators bool
}

// Carousel renders a slide container. The autoplay interval is written to
// data-interval in milliseconds.
func Carousel(p CarouselProps, children ...any) *vdom.VNode {
	interval := p.Interval
	if interval == 0 {
		interval = DefaultCarouselInterval
	}
	cls := classes("carousel", p.Color.String(), p.Size.String()).
		addIf(p.AutoPlay, "carousel-auto").
		addIf(p.Infinite, "carousel-infinite").
		addIf(p.PauseOnHover, "carousel-pause").
		add(p.Class)
	return element("div", cls, p.ID,
		vdom.DataInt("interval", interval),
		children,
	)
}

// CarouselItemProps configures CarouselItem.
type CarouselItemProps struct {
	ID     string
	Class  string
	Active bool
}

// CarouselItem renders one slide. Active marks the visible slide.
func CarouselItem(p CarouselItemProps, children ...any) *vdom.VNode {
	cls := classes("carousel-item").
		addIf(p.Active, "carousel-item-active").
		add(p.Class)
	return element("div", cls, p.ID, children)
}
