package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/site"
	"github.com/vango-dev/daisy/pkg/daisy"
	"github.com/vango-dev/daisy/pkg/render"
	"github.com/vango-dev/daisy/pkg/vdom"
)

type showOptions struct {
	theme  string
	pretty bool
	page   bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <component> [demo]",
		Short: "Render component demos as HTML",
		Long: `Render one demo, or every demo of a component, to standard output.

With --page the output is a complete HTML document using the site's
stylesheets, ready to open in a browser.

Examples:
  daisy show button
  daisy show button colors --pretty
  daisy show hero --page --theme dracula > hero.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			demo := ""
			if len(args) == 2 {
				demo = args[1]
			}
			return runShow(cmd, flags, opts, args[0], demo)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Wrap the output in a data-theme scope")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent the HTML")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Render a complete HTML document")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, name, demo string) error {
	theme := ""
	if opts.theme != "" {
		t, ok := daisy.ParseThemeName(opts.theme)
		if !ok {
			return errors.New("E105").WithDetail(fmt.Sprintf("%q is not a built-in theme", opts.theme)).
				WithSuggestion("Run 'daisy themes' to see the available themes.")
		}
		theme = t.String()
	}

	r := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty, Indent: "  "})
	w := cmd.OutOrStdout()

	if opts.page {
		return showPage(w, r, flags, name, demo, theme)
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	node, err := demoNodes(cat, name, demo)
	if err != nil {
		return err
	}
	if theme != "" {
		node = vdom.Div(vdom.Attribute("data-theme", theme), node)
	}
	if err := r.RenderToWriter(w, node); err != nil {
		return errors.New("E301").Wrap(err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// demoNodes renders one demo, or all demos of a component separated by
// HTML comments naming them.
func demoNodes(cat *catalog.Catalog, name, demo string) (*vdom.VNode, error) {
	if demo != "" {
		return cat.RenderDemo(name, demo)
	}

	e, err := cat.Get(name)
	if err != nil {
		return nil, err
	}
	children := make([]any, 0, 2*len(e.Demos))
	for _, d := range e.Demos {
		node, err := cat.RenderDemo(name, d.Name)
		if err != nil {
			return nil, err
		}
		children = append(children, vdom.Raw("<!-- "+e.Name+"/"+d.Name+" -->"), node)
	}
	return vdom.Fragment(children...), nil
}

func showPage(w io.Writer, r *render.Renderer, flags *rootFlags, name, demo, theme string) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	opts := site.PageOptions{
		Site:  cfg.Site,
		Theme: theme,
		Links: site.StaticLinks(0),
		Year:  time.Now().Year(),
	}

	var (
		body  *vdom.VNode
		title string
	)
	if demo == "" {
		body, err = site.ComponentPage(cat, name, opts)
		if err != nil {
			return err
		}
		e, _ := cat.Get(name)
		title = e.Title
	} else {
		body, err = cat.RenderDemo(name, demo)
		if err != nil {
			return err
		}
		body = vdom.Main(vdom.Class("p-6"), body)
		title = name + "/" + demo
	}

	if err := r.RenderPage(w, site.Document(opts, title, body)); err != nil {
		return errors.New("E301").Wrap(err)
	}
	return nil
}
