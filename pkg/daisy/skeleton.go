package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// SkeletonVariant picks the placeholder shape.
type SkeletonVariant int

const (
	SkeletonVariantText SkeletonVariant = iota
	SkeletonVariantAvatar
	SkeletonVariantImage
	SkeletonVariantCard
)

// String returns the class token for v.
func (v SkeletonVariant) String() string {
	switch v {
	case SkeletonVariantText:
		return "skeleton-text"
	case SkeletonVariantAvatar:
		return "skeleton-avatar"
	case SkeletonVariantImage:
		return "skeleton-image"
	case SkeletonVariantCard:
		return "skeleton-card"
	}
	return ""
}

// SkeletonProps configures Skeleton.
type SkeletonProps struct {
	ID      string
	Class   string
	Variant SkeletonVariant
}

// Skeleton renders an empty loading placeholder.
func Skeleton(p SkeletonProps) *vdom.VNode {
	return element("div", classes("skeleton", p.Variant.String(), p.Class), p.ID)
}
