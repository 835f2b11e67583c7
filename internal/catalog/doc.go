// Package catalog describes the components of pkg/daisy for the gallery
// and the CLI.
//
// The catalog is an embedded YAML manifest listing every component family
// with its category, its exported parts and its demos. Each demo is backed
// by a Go function building an example tree, registered under the key
// "component/demo". Load refuses a manifest whose demos and functions do
// not match one to one.
//
//	c, err := catalog.Load()
//	node, err := c.RenderDemo("button", "colors")
package catalog
