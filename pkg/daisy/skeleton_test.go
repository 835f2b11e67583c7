package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestSkeleton(t *testing.T) {
	assert.Equal(t, `<div class="skeleton skeleton-text"></div>`, vtest.MustRender(t, Skeleton(SkeletonProps{})))
	for v, token := range map[SkeletonVariant]string{
		SkeletonVariantAvatar: "skeleton-avatar",
		SkeletonVariantImage:  "skeleton-image",
		SkeletonVariantCard:   "skeleton-card",
	} {
		vtest.ExpectClass(t, Skeleton(SkeletonProps{Variant: v, Class: "h-32"}), "skeleton "+token+" h-32")
	}
}
