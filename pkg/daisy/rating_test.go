package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestRating_Default(t *testing.T) {
	doc := vtest.Parse(t, Rating(RatingProps{ID: "r", Value: 3}))
	root := doc.First()
	class, _ := vtest.Attr(root, "class")
	assert.Equal(t, "rating rating-primary", class)

	stars := doc.FindAll("input")
	require.Len(t, stars, 5)
	for i, s := range stars {
		name, _ := vtest.Attr(s, "name")
		label, _ := vtest.Attr(s, "aria-label")
		_, checked := vtest.Attr(s, "checked")
		_, disabled := vtest.Attr(s, "disabled")
		assert.Equal(t, "rating-r", name)
		assert.Equal(t, []string{"mask", "mask-star"}, vtest.ClassList(s))
		assert.Equal(t, []string{"1 star", "2 star", "3 star", "4 star", "5 star"}[i], label)
		assert.Equal(t, i < 3, checked, "star %d", i+1)
		assert.False(t, disabled)
	}
}

func TestRating_FirstStar(t *testing.T) {
	got := vtest.MustRender(t, Rating(RatingProps{ID: "a", Value: 1, Max: Int(1)}))
	assert.Equal(t,
		`<div class="rating rating-primary" id="a"><input class="mask mask-star" aria-label="1 star" checked name="rating-a" type="radio"></div>`,
		got)
}

func TestRating_ReadOnlyAndMax(t *testing.T) {
	doc := vtest.Parse(t, Rating(RatingProps{
		Value:       2,
		Max:         Int(10),
		ReadOnly:    true,
		Half:        true,
		ColorScheme: RatingColorSchemeWarning,
		Size:        RatingSizeLarge,
		Class:       "gap-1",
	}))
	class, _ := vtest.Attr(doc.First(), "class")
	assert.Equal(t, "rating rating-warning rating-lg rating-half gap-1", class)

	stars := doc.FindAll("input")
	require.Len(t, stars, 10)
	for _, s := range stars {
		_, disabled := vtest.Attr(s, "disabled")
		assert.True(t, disabled)
		name, _ := vtest.Attr(s, "name")
		assert.Equal(t, "rating-", name)
	}
}

func TestRating_Degenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		doc := vtest.Parse(t, Rating(RatingProps{Max: Int(-3), Value: 7}))
		assert.Empty(t, doc.FindAll("input"))
	})
	doc := vtest.Parse(t, Rating(RatingProps{Max: Int(2), Value: 9}))
	assert.Len(t, doc.FindAll("input"), 2)

	// An explicit zero renders no stars; only nil falls back to the default.
	assert.Equal(t, `<div class="rating rating-primary"></div>`, vtest.MustRender(t, Rating(RatingProps{Max: Int(0)})))
	assert.Len(t, vtest.Parse(t, Rating(RatingProps{})).FindAll("input"), DefaultRatingMax)
}
