package render

import (
	"strings"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// inlineElements stay on the current line in pretty output.
var inlineElements = wordSet(`
	a abbr b bdi bdo br cite code data dfn em i kbd mark q rb rp rt rtc
	ruby s samp small span strong sub sup time u var wbr`)

// booleanAttrs render as a bare name when true and are omitted when false.
var booleanAttrs = wordSet(`
	allowfullscreen async autofocus autoplay checked controls default defer
	disabled formnovalidate hidden inert ismap itemscope loop multiple muted
	nomodule novalidate open playsinline readonly required reversed selected`)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

func isInlineElement(tag string) bool {
	_, ok := inlineElements[tag]
	return ok
}

func isBooleanAttr(name string) bool {
	_, ok := booleanAttrs[name]
	return ok
}
