package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ArtboardDevice selects the mock device frame. Phone is the default.
type ArtboardDevice int

const (
	ArtboardDevicePhone ArtboardDevice = iota
	ArtboardDeviceTablet
	ArtboardDeviceLaptop
	ArtboardDeviceDesktop
)

// String returns the class token for d.
func (d ArtboardDevice) String() string {
	switch d {
	case ArtboardDevicePhone:
		return "artboard-phone"
	case ArtboardDeviceTablet:
		return "artboard-tablet"
	case ArtboardDeviceLaptop:
		return "artboard-laptop"
	case ArtboardDeviceDesktop:
		return "artboard-desktop"
	}
	return ""
}

// ArtboardColor tints the artboard frame.
type ArtboardColor int

const (
	ArtboardColorNeutral ArtboardColor = iota + 1
	ArtboardColorPrimary
	ArtboardColorSecondary
)

// String returns the class token for c, or "" when unset.
func (c ArtboardColor) String() string {
	switch c {
	case ArtboardColorNeutral:
		return "artboard-neutral"
	case ArtboardColorPrimary:
		return "artboard-primary"
	case ArtboardColorSecondary:
		return "artboard-secondary"
	}
	return ""
}

// ArtboardSize sets the artboard size modifier.
type ArtboardSize int

const (
	ArtboardSizeSmall ArtboardSize = iota + 1
	ArtboardSizeMedium
	ArtboardSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s ArtboardSize) String() string {
	switch s {
	case ArtboardSizeSmall:
		return "artboard-sm"
	case ArtboardSizeMedium:
		return "artboard-md"
	case ArtboardSizeLarge:
		return "artboard-lg"
	}
	return ""
}

// ArtboardBorderRadius rounds the artboard corners. None adds no token.
type ArtboardBorderRadius int

const (
	ArtboardBorderRadiusNone ArtboardBorderRadius = iota
	ArtboardBorderRadiusSmall
	ArtboardBorderRadiusMedium
	ArtboardBorderRadiusLarge
	ArtboardBorderRadiusExtraLarge
)

// String returns the class token for r.
func (r ArtboardBorderRadius) String() string {
	switch r {
	case ArtboardBorderRadiusSmall:
		return "rounded-sm"
	case ArtboardBorderRadiusMedium:
		return "rounded-md"
	case ArtboardBorderRadiusLarge:
		return "rounded-lg"
	case ArtboardBorderRadiusExtraLarge:
		return "rounded-xl"
	}
	return ""
}

// ArtboardShadow sets the drop shadow under the artboard.
type ArtboardShadow int

const (
	ArtboardShadowNone ArtboardShadow = iota
	ArtboardShadowSmall
	ArtboardShadowMedium
	ArtboardShadowLarge
)

// String returns the class token for s.
func (s ArtboardShadow) String() string {
	switch s {
	case ArtboardShadowSmall:
		return "shadow-sm"
	case ArtboardShadowMedium:
		return "shadow-md"
	case ArtboardShadowLarge:
		return "shadow-lg"
	}
	return ""
}

// ArtboardProps configures Artboard. Tokens follow field order: device, color, size, radius, shadow.
type ArtboardProps struct {
	ID           string
	Class        string
	Device       ArtboardDevice
	Color        ArtboardColor
	Size         ArtboardSize
	BorderRadius ArtboardBorderRadius
	Shadow       ArtboardShadow
}

// Artboard renders a fixed-size device frame for showcasing content.
func Artboard(p ArtboardProps, children ...any) *vdom.VNode {
	cls := classes("artboard",
		p.Device.String(),
		p.Color.String(),
		p.Size.String(),
		p.BorderRadius.String(),
		p.Shadow.String(),
		p.Class,
	)
	return element("div", cls, p.ID, children)
}

// ArtboardContentProps configures ArtboardContent.
type ArtboardContentProps struct {
	ID    string
	Class string
}

// ArtboardContent renders the inner area of an artboard.
func ArtboardContent(p ArtboardContentProps, children ...any) *vdom.VNode {
	return simple("artboard-content", p.ID, p.Class, children)
}
