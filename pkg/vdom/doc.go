// Package vdom provides the in-memory markup tree used by the daisy components.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attr values
// are collected into Props when an element is built.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be attributes, child nodes, strings (escaped text),
// components, or nil. Nil arguments are skipped, which keeps conditional
// attributes and children terse:
//
//	Button(Class(CN("btn", variant)), AttrIf(disabled, Disabled()), label)
//
// Trees are rendered to HTML by package render.
package vdom
