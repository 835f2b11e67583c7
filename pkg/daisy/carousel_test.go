package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestCarousel_Default(t *testing.T) {
	got := vtest.MustRender(t, Carousel(CarouselProps{}))
	assert.Equal(t, `<div class="carousel" data-interval="5000"></div>`, got)
}

func TestCarousel_Flags(t *testing.T) {
	node := Carousel(CarouselProps{
		Color:          CarouselColorPrimary,
		Size:           CarouselSizeLarge,
		AutoPlay:       true,
		Infinite:       true,
		PauseOnHover:   true,
		ShowNav:        true,
		ShowIndicators: true,
		Interval:       3000,
		Class:          "w-full",
	})
	doc := vtest.Parse(t, node)
	class, _ := vtest.Attr(doc.First(), "class")
	assert.Equal(t, "carousel carousel-primary carousel-lg carousel-auto carousel-infinite carousel-pause w-full", class)
	interval, _ := vtest.Attr(doc.First(), "data-interval")
	assert.Equal(t, "3000", interval)
}

func TestCarouselItem(t *testing.T) {
	vtest.ExpectClass(t, CarouselItem(CarouselItemProps{}), "carousel-item")
	vtest.ExpectClass(t, CarouselItem(CarouselItemProps{Active: true, Class: "x"}), "carousel-item carousel-item-active x")
}
