// Package daisy provides DaisyUI components as vdom trees.
//
// Every component is a function taking a props struct and optional
// children and returning a *vdom.VNode:
//
//	daisy.ButtonUI(daisy.ButtonUIProps{
//	    ColorScheme: daisy.ButtonUIColorSchemePrimary,
//	    Size:        daisy.ButtonUISizeLarge,
//	}, "Click me")
//
// Components only assemble class names and attributes; the stylesheet
// that defines the tokens (btn-primary, chat-bubble-success, ...) is
// supplied by the page. Rendering is deterministic: equal props and
// children always produce equal markup.
//
// Style enums are small integer types whose String method returns the
// CSS token. Enums that have a default variant use it as the zero
// value; purely optional enums use the zero value for "unset", which
// contributes no token.
//
// Children accept anything vdom element constructors accept: nodes,
// node slices, strings (escaped text) and components. Nil children are
// skipped.
package daisy
