package daisy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestProgress_Default(t *testing.T) {
	got := vtest.MustRender(t, Progress(ProgressProps{Value: 50}))
	assert.Equal(t,
		`<div class="progress progress-primary" aria-valuemax="100" aria-valuemin="0" aria-valuenow="50" role="progressbar" style="width: 50%"></div>`,
		got)
}

func TestProgress_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   *float64
		want  string
	}{
		{"over max", 150, nil, "width: 100%"},
		{"negative", -20, nil, "width: 0%"},
		{"fraction", 1, Float64(8), "width: 12.5%"},
		{"custom max", 5, Float64(10), "width: 50%"},
		{"unset max", 0, nil, "width: 0%"},
		{"zero max", 5, Float64(0), "width: 100%"},
		{"zero over zero", 0, Float64(0), "width: 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, ok := vtest.Attr(vtest.Parse(t, Progress(ProgressProps{Value: tt.value, Max: tt.max})).First(), "style")
			require.True(t, ok)
			assert.Equal(t, tt.want, style)
		})
	}
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 100.0, ProgressPercent(0, 0))
	assert.Equal(t, 100.0, ProgressPercent(1, 0))
	assert.Equal(t, 0.0, ProgressPercent(-1, 0))
	assert.Equal(t, 100.0, ProgressPercent(math.NaN(), 10))
	assert.Equal(t, 25.0, ProgressPercent(25, 100))
}

func TestProgress_Indeterminate(t *testing.T) {
	doc := vtest.Parse(t, Progress(ProgressProps{
		Value:         30,
		Indeterminate: true,
		ColorScheme:   ProgressColorSchemeError,
		Size:          ProgressSizeSmall,
		Class:         "w-56",
	}))
	root := doc.First()
	class, _ := vtest.Attr(root, "class")
	assert.Equal(t, "progress progress-error progress-sm progress-indeterminate w-56", class)
	_, hasStyle := vtest.Attr(root, "style")
	assert.False(t, hasStyle)
	role, _ := vtest.Attr(root, "role")
	assert.Equal(t, "progressbar", role)
}

func TestProgress_AriaMax(t *testing.T) {
	doc := vtest.Parse(t, Progress(ProgressProps{Value: 2.5, Max: Float64(10)}))
	now, _ := vtest.Attr(doc.First(), "aria-valuenow")
	limit, _ := vtest.Attr(doc.First(), "aria-valuemax")
	assert.Equal(t, "2.5", now)
	assert.Equal(t, "10", limit)
}

func TestProgress_ExplicitZeroMax(t *testing.T) {
	doc := vtest.Parse(t, Progress(ProgressProps{Value: 1, Max: Float64(0)}))
	limit, _ := vtest.Attr(doc.First(), "aria-valuemax")
	assert.Equal(t, "0", limit)
}
