package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		props MaskProps
		want  string
	}{
		{"default", MaskProps{}, `<div class="mask"></div>`},
		{"variant and size", MaskProps{Variant: MaskVariantHexagon, Size: MaskSizeLarge}, `<div class="mask mask-hexagon mask-lg"></div>`},
		{"width", MaskProps{Width: "64px"}, `<div class="mask" style="width: 64px"></div>`},
		{"both", MaskProps{Width: "64px", Height: "32px"}, `<div class="mask" style="width: 64px; height: 32px"></div>`},
		{"height", MaskProps{Height: "1rem"}, `<div class="mask" style="height: 1rem"></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vtest.MustRender(t, Mask(tt.props)))
		})
	}
}
