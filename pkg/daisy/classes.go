package daisy

import (
	"strings"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// classList accumulates class tokens in order. Empty tokens are dropped
// so joined output never carries stray separators.
type classList []string

func classes(base ...string) classList {
	return classList(nil).add(base...)
}

func (c classList) add(tokens ...string) classList {
	for _, t := range tokens {
		if t != "" {
			c = append(c, t)
		}
	}
	return c
}

func (c classList) addIf(cond bool, token string) classList {
	if cond {
		return c.add(token)
	}
	return c
}

// String joins the non-empty tokens with single spaces.
func (c classList) String() string {
	return strings.Join(c, " ")
}

// element builds tag carrying the joined class list and id, followed by
// any extra attributes and children in args.
func element(tag string, cls classList, id string, args ...any) *vdom.VNode {
	return vdom.El(tag,
		vdom.StringAttr("class", cls.String()),
		vdom.StringAttr("id", id),
		args,
	)
}

// simple builds the common div with a fixed base token.
func simple(base, id, class string, children []any) *vdom.VNode {
	return element("div", classes(base, class), id, children)
}
