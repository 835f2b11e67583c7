package daisy

import (
	"strings"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// MaskVariant picks the mask shape. None adds no shape token.
type MaskVariant int

const (
	MaskVariantNone MaskVariant = iota
	MaskVariantCircle
	MaskVariantSquare
	MaskVariantSquircle
	MaskVariantHexagon
	MaskVariantTriangle
	MaskVariantDiamond
)

// String returns the class token for v.
func (v MaskVariant) String() string {
	switch v {
	case MaskVariantCircle:
		return "mask-circle"
	case MaskVariantSquare:
		return "mask-square"
	case MaskVariantSquircle:
		return "mask-squircle"
	case MaskVariantHexagon:
		return "mask-hexagon"
	case MaskVariantTriangle:
		return "mask-triangle"
	case MaskVariantDiamond:
		return "mask-diamond"
	}
	return ""
}

// MaskSize sets the mask size modifier.
type MaskSize int

const (
	MaskSizeDefault MaskSize = iota
	MaskSizeSmall
	MaskSizeMedium
	MaskSizeLarge
)

// String returns the class token for s.
func (s MaskSize) String() string {
	switch s {
	case MaskSizeSmall:
		return "mask-sm"
	case MaskSizeMedium:
		return "mask-md"
	case MaskSizeLarge:
		return "mask-lg"
	}
	return ""
}

// MaskProps configures Mask. Width and Height become inline style.
type MaskProps struct {
	ID      string
	Class   string
	Variant MaskVariant
	Size    MaskSize

	// Width and Height are CSS lengths, e.g. "64px".
	Width  string
	Height string
}

// Mask crops its content to a shape.
func Mask(p MaskProps, children ...any) *vdom.VNode {
	var style []string
	if p.Width != "" {
		style = append(style, "width: "+p.Width)
	}
	if p.Height != "" {
		style = append(style, "height: "+p.Height)
	}
	return element("div", classes("mask", p.Variant.String(), p.Size.String(), p.Class), p.ID,
		vdom.StringAttr("style", strings.Join(style, "; ")),
		children,
	)
}
