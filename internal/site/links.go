package site

import (
	"net/url"

	"github.com/gosimple/slug"
)

// Links resolves gallery URLs from the point of view of one page.
type Links struct {
	Home      string
	Component func(name string) string
}

// PagePath returns the output path of a component page, relative to the
// gallery root.
func PagePath(name string) string {
	return "components/" + slug.Make(name) + ".html"
}

// StaticLinks builds relative links for a page nested depth directories
// below the gallery root.
func StaticLinks(depth int) Links {
	prefix := ""
	for i := 0; i < depth; i++ {
		prefix += "../"
	}
	return Links{
		Home: prefix + "index.html",
		Component: func(name string) string {
			return prefix + PagePath(name)
		},
	}
}

// ServerLinks builds absolute links for the preview server, carrying the
// query (such as ?theme=dark) from page to page.
func ServerLinks(query url.Values) Links {
	suffix := ""
	if len(query) > 0 {
		suffix = "?" + query.Encode()
	}
	return Links{
		Home: "/" + suffix,
		Component: func(name string) string {
			return "/components/" + url.PathEscape(slug.Make(name)) + suffix
		},
	}
}
