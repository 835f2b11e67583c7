package site

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/pkg/daisy"
	"github.com/vango-dev/daisy/pkg/render"
	"github.com/vango-dev/daisy/pkg/vdom"
)

// PageOptions carries what every gallery page shares.
type PageOptions struct {
	Site  config.SiteConfig
	Theme string
	Links Links

	// Year is shown in the footer copyright.
	Year int

	// Scripts are appended to every document, e.g. the live reload client.
	Scripts []render.ScriptTag
}

// Document wraps a page body in the site's document shell.
func Document(opts PageOptions, title string, body *vdom.VNode) render.PageData {
	theme := opts.Theme
	if theme == "" {
		theme = opts.Site.Theme
	}

	fullTitle := opts.Site.Title
	if title != "" {
		fullTitle = title + " · " + opts.Site.Title
	}

	scripts := make([]render.ScriptTag, 0, len(opts.Site.Scripts)+len(opts.Scripts))
	for _, src := range opts.Site.Scripts {
		scripts = append(scripts, render.ScriptTag{Src: src, Defer: true})
	}
	scripts = append(scripts, opts.Scripts...)

	return render.PageData{
		Body:        body,
		Title:       fullTitle,
		Theme:       theme,
		StyleSheets: opts.Site.StyleSheets,
		Scripts:     scripts,
	}
}

// IndexPage lists every component grouped by category.
func IndexPage(c *catalog.Catalog, opts PageOptions) *vdom.VNode {
	demos := 0
	for _, e := range c.List() {
		demos += len(e.Demos)
	}

	sections := make([]*vdom.VNode, 0, len(c.Categories()))
	for _, category := range c.Categories() {
		cards := make([]*vdom.VNode, 0)
		for _, e := range c.InCategory(category) {
			cards = append(cards, vdom.A(
				vdom.Class("card bg-base-200 p-4 hover:bg-base-300"),
				vdom.Href(opts.Links.Component(e.Name)),
				vdom.Strong(e.Title),
				vdom.P(vdom.Class("text-sm opacity-70"), e.Description),
			))
		}
		sections = append(sections, vdom.Section(
			vdom.ID("category-"+category),
			vdom.El("h2", vdom.Class("text-xl font-bold mb-2"), heading(category)),
			vdom.Div(vdom.Class("grid gap-4 md:grid-cols-3"), cards),
		))
	}

	content := vdom.Fragment(
		daisy.Hero(daisy.HeroProps{Size: daisy.HeroSizeSmall, Class: "bg-base-200 rounded-box"},
			daisy.HeroContent(daisy.HeroContentProps{Align: daisy.HeroAlignCenter},
				daisy.HeroTitle(daisy.HeroTitleProps{}, opts.Site.Title),
				daisy.HeroSubtitle(daisy.HeroSubtitleProps{}, "Server-rendered DaisyUI components."),
			),
		),
		daisy.Stats(daisy.StatsProps{Class: "my-6 shadow"},
			stat("Components", len(c.List())),
			stat("Demos", demos),
			stat("Categories", len(c.Categories())),
		),
		sections,
	)

	return layout(c, opts, "", content)
}

// ComponentPage shows every demo of one component with its HTML.
func ComponentPage(c *catalog.Catalog, name string, opts PageOptions) (*vdom.VNode, error) {
	e, err := c.Get(name)
	if err != nil {
		return nil, err
	}

	parts := make([]any, 0, 2*len(e.Parts))
	for i, p := range e.Parts {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, daisy.Code(daisy.CodeProps{}, "daisy."+p))
	}

	sections := make([]*vdom.VNode, 0, len(e.Demos))
	for _, d := range e.Demos {
		section, err := demoSection(c, e, d)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	content := vdom.Fragment(
		vdom.El("h1", vdom.Class("text-3xl font-bold"), e.Title),
		vdom.P(vdom.Class("opacity-70"), e.Description),
		vdom.P(vdom.Class("my-2"), parts),
		daisy.Divider(daisy.DividerProps{}),
		sections,
	)

	return layout(c, opts, e.Name, content), nil
}

func demoSection(c *catalog.Catalog, e *catalog.Entry, d catalog.DemoInfo) (*vdom.VNode, error) {
	node, err := c.RenderDemo(e.Name, d.Name)
	if err != nil {
		return nil, err
	}

	source, err := render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(node)
	if err != nil {
		return nil, err
	}

	return vdom.Section(
		vdom.ID("demo-"+d.Name),
		vdom.Class("mb-8"),
		vdom.El("h2", vdom.Class("text-xl font-semibold"), d.Title),
		vdom.If(d.Description != "", vdom.P(vdom.Class("opacity-70"), d.Description)),
		vdom.Div(vdom.Class("demo rounded-box border border-base-300 p-6 my-2"), node),
		daisy.Code(daisy.CodeProps{Type: daisy.CodeTypeBlock},
			vdom.Code(strings.TrimSpace(source)),
		),
	), nil
}

// layout places content between the navbar, the component menu and the
// footer. active names the component to highlight.
func layout(c *catalog.Catalog, opts PageOptions, active string, content any) *vdom.VNode {
	menu := make([]*vdom.VNode, 0)
	for _, category := range c.Categories() {
		menu = append(menu, daisy.MenuTitle(daisy.MenuTitleProps{}, heading(category)))
		for _, e := range c.InCategory(category) {
			menu = append(menu, daisy.MenuItem(daisy.MenuItemProps{
				Href:   opts.Links.Component(e.Name),
				Active: e.Name == active,
			}, e.Title))
		}
	}

	return vdom.Div(vdom.Class("flex min-h-screen flex-col"),
		daisy.Navbar(daisy.NavbarProps{Class: "bg-base-200"},
			daisy.NavbarStart(daisy.NavbarStartProps{},
				daisy.Link(daisy.LinkProps{Href: opts.Links.Home, Class: "text-lg font-bold"}, opts.Site.Title),
			),
			daisy.NavbarEnd(daisy.NavbarEndProps{},
				daisy.Kbd(daisy.KbdProps{}, themeLabel(opts)),
			),
		),
		vdom.Div(vdom.Class("flex flex-1"),
			vdom.Aside(vdom.Class("w-60 shrink-0"),
				daisy.Menu(daisy.MenuProps{}, menu),
			),
			vdom.Main(vdom.Class("flex-1 p-6"), content),
		),
		daisy.Footer(daisy.FooterProps{
			Class:     "p-6",
			Copyright: "© {year} " + opts.Site.Title,
			Year:      opts.Year,
		}),
	)
}

func themeLabel(opts PageOptions) string {
	if opts.Theme != "" {
		return opts.Theme
	}
	return opts.Site.Theme
}

func stat(title string, value int) *vdom.VNode {
	return daisy.StatsItem(daisy.StatsItemProps{},
		daisy.StatsTitle(daisy.StatsTitleProps{}, title),
		daisy.StatsValue(daisy.StatsValueProps{}, strconv.Itoa(value)),
	)
}

// heading turns a category such as "data-display" into "Data Display".
func heading(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}
