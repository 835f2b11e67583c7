// Package preview serves the component gallery over HTTP while a project
// is being worked on.
//
// Pages are rendered on every request from the current catalog, so a
// browser refresh always shows the latest markup. With reload enabled the
// server also polls the configured watch paths and pushes a
// {"type":"reload"} message to connected browsers over a WebSocket once
// changes settle.
//
// Routes:
//
//	GET /                                  gallery index
//	GET /components/{name}                 component page
//	GET /components/{name}/demos/{demo}    bare demo fragment
//	GET /api/components                    catalog as JSON
//	GET /healthz                           liveness
//	GET /metrics                           Prometheus metrics
//	GET /_daisy/reload                     live reload WebSocket
//
// Every page route accepts ?theme=<name>; an unknown theme is a 400.
package preview
