package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// SwapAnimation picks how the two states change places.
type SwapAnimation int

const (
	SwapAnimationFade SwapAnimation = iota
	SwapAnimationFlip
	SwapAnimationRotate
)

// String returns the class token for a.
func (a SwapAnimation) String() string {
	switch a {
	case SwapAnimationFade:
		return "swap-fade"
	case SwapAnimationFlip:
		return "swap-flip"
	case SwapAnimationRotate:
		return "swap-rotate"
	}
	return ""
}

// SwapSize sets the swap size modifier.
type SwapSize int

const (
	SwapSizeDefault SwapSize = iota
	SwapSizeSmall
	SwapSizeMedium
	SwapSizeLarge
)

// String returns the class token for s.
func (s SwapSize) String() string {
	switch s {
	case SwapSizeSmall:
		return "swap-sm"
	case SwapSizeMedium:
		return "swap-md"
	case SwapSizeLarge:
		return "swap-lg"
	}
	return ""
}

// SwapProps configures Swap.
type SwapProps struct {
	ID        string
	Class     string
	Animation SwapAnimation
	Size      SwapSize
	// Active shows the second SwapItem.
	Active bool
}

// Swap toggles between two SwapItem children.
func Swap(p SwapProps, children ...any) *vdom.VNode {
	cls := classes("swap", p.Animation.String()).
		addIf(p.Active, "swap-active").
		add(p.Size.String(), p.Class)
	return element("label", cls, p.ID, children)
}

// SwapItemProps configures SwapItem.
type SwapItemProps struct {
	Class string
}

// SwapItem renders one of the two swapped states.
func SwapItem(p SwapItemProps, children ...any) *vdom.VNode {
	return element("div", classes("swap-item", p.Class), "", children)
}
