// Package site renders the component catalog into a browsable gallery.
//
// The same page builders serve two consumers: Builder writes a static
// gallery (index.html, components/<slug>.html and manifest.json) using a
// bounded pool of render workers, and the preview server renders pages on
// request. Links abstracts the difference between relative file links and
// server routes.
package site
