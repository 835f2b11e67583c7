package render

import (
	"io"
	"net/http"
)

// StreamPage renders a complete document like RenderPage, flushing w after
// the head and again at the end when w is an http.Flusher. Browsers can
// start fetching stylesheets while the body is still being rendered.
func (r *Renderer) StreamPage(w io.Writer, page PageData) error {
	flush := func() {}
	if f, ok := w.(http.Flusher); ok {
		flush = f.Flush
	}

	if err := r.renderDocumentStart(w, page); err != nil {
		return err
	}
	flush()

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if err := r.renderDocumentEnd(w, page); err != nil {
		return err
	}
	flush()
	return nil
}
