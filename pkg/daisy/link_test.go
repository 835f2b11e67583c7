package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name  string
		props LinkProps
		want  string
	}{
		{
			"default",
			LinkProps{Href: "/a"},
			`<a class="link link-neutral" href="/a">A</a>`,
		},
		{
			"external without blank target",
			LinkProps{Href: "/a", External: true},
			`<a class="link link-neutral" href="/a">A</a>`,
		},
		{
			"external self target",
			LinkProps{Href: "/a", External: true, Target: "_self"},
			`<a class="link link-neutral" href="/a" target="_self">A</a>`,
		},
		{
			"external blank target",
			LinkProps{Href: "/a", External: true, Target: "_blank"},
			`<a class="link link-neutral" href="/a" rel="noopener noreferrer" target="_blank">A</a>`,
		},
		{
			"blank target not external",
			LinkProps{Href: "/a", Target: "_blank", ColorScheme: LinkColorSchemeError, Class: "x"},
			`<a class="link link-error x" href="/a" target="_blank">A</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vtest.MustRender(t, Link(tt.props, "A")))
		})
	}
}

func TestLink_NoRelWithoutBlank(t *testing.T) {
	vtest.ExpectNotContains(t, Link(LinkProps{Href: "/", External: true}), "rel=")
}
