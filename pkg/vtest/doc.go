// Package vtest provides testing helpers for components built on vdom.
//
// Components are tested through their rendered HTML. The helpers render a
// node with the default renderer and either match substrings or parse
// the markup with golang.org/x/net/html for structural queries.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, node, "Welcome")
//	vtest.ExpectNotContains(t, node, "rel=")
//	vtest.ExpectClass(t, node, "btn btn-neutral")
//
// # Structural Queries
//
//	doc := vtest.Parse(t, node)
//	input := doc.Find("input")
//	v, ok := vtest.Attr(input, "type")
//	stars := doc.FindByClass("mask-star")
//
// Parse fails the test immediately when rendering fails.
package vtest
