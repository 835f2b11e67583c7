package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Theme is written as the data-theme attribute of the html element.
	Theme string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains extra meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Scripts contains script tags. Deferred and async scripts go in the
	// head; the rest are appended to the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.renderDocumentStart(w, page); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	return r.renderDocumentEnd(w, page)
}

func (r *Renderer) renderDocumentStart(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if err := r.writeString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s"`, escapeAttr(lang)); err != nil {
		return err
	}
	if page.Theme != "" {
		if _, err := fmt.Fprintf(w, ` data-theme="%s"`, escapeAttr(page.Theme)); err != nil {
			return err
		}
	}
	if err := r.writeString(w, ">\n"); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	return r.writeString(w, "<body>\n")
}

func (r *Renderer) renderDocumentEnd(w io.Writer, page PageData) error {
	for _, script := range page.Scripts {
		if script.Defer || script.Async {
			continue
		}
		if err := r.renderScriptTag(w, script); err != nil {
			return err
		}
	}
	return r.writeString(w, "</body>\n</html>\n")
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	head := "<head>\n" +
		`  <meta charset="utf-8">` + "\n" +
		`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n"
	if err := r.writeString(w, head); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := r.renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	for _, script := range page.Scripts {
		if script.Defer || script.Async {
			if err := r.renderScriptTag(w, script); err != nil {
				return err
			}
		}
	}

	return r.writeString(w, "</head>\n")
}

// renderMetaTag renders a meta element.
func (r *Renderer) renderMetaTag(w io.Writer, meta MetaTag) error {
	node := vdom.Meta(
		vdom.StringAttr("name", meta.Name),
		vdom.StringAttr("property", meta.Property),
		vdom.StringAttr("content", meta.Content),
	)
	if err := r.writeString(w, "  "); err != nil {
		return err
	}
	if err := defaultRenderer.renderElement(w, node, 0); err != nil {
		return err
	}
	return r.writeString(w, "\n")
}

// renderScriptTag renders a script element.
func (r *Renderer) renderScriptTag(w io.Writer, script ScriptTag) error {
	node := vdom.Script(
		vdom.StringAttr("src", script.Src),
		vdom.StringAttr("type", script.Type),
		vdom.AttrIf(script.Defer, vdom.Defer_()),
		vdom.AttrIf(script.Async, vdom.Attribute("async", true)),
	)
	if script.Inline != "" {
		node.Props["dangerouslySetInnerHTML"] = script.Inline
	}
	if err := r.writeString(w, "  "); err != nil {
		return err
	}
	if err := defaultRenderer.renderElement(w, node, 0); err != nil {
		return err
	}
	return r.writeString(w, "\n")
}
