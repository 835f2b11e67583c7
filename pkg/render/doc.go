// Package render provides server-side rendering for vdom trees.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - HTML5 element rendering with void element handling (input, br, img)
//   - Text and attribute escaping
//   - Boolean attributes (disabled, checked) rendered as bare names
//   - Deterministic attribute order: class, id, then the rest by name
//   - Full page rendering with DOCTYPE, head, body and a data-theme root
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// For one-off rendering into memory, HTML(node) uses a shared renderer.
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:        bodyNode,
//	    Title:       "Buttons",
//	    Theme:       "dark",
//	    StyleSheets: []string{"https://cdn.jsdelivr.net/npm/daisyui@4/dist/full.min.css"},
//	}
//	err := renderer.RenderPage(w, page)
//
// # Streaming
//
// StreamPage writes the same document but flushes the head before the body
// when the writer is an http.Flusher:
//
//	err := renderer.StreamPage(w, page)
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw
// nodes, but should only be used with trusted content.
package render
