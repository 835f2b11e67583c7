package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ToastType sets the alert style of a toast.
type ToastType int

const (
	ToastTypeSuccess ToastType = iota
	ToastTypeInfo
	ToastTypeWarning
	ToastTypeError
)

// String returns the class token for t.
func (t ToastType) String() string {
	switch t {
	case ToastTypeSuccess:
		return "alert-success"
	case ToastTypeInfo:
		return "alert-info"
	case ToastTypeWarning:
		return "alert-warning"
	case ToastTypeError:
		return "alert-error"
	}
	return ""
}

// ToastProps configures Toast.
type ToastProps struct {
	ID    string
	Class string
	Type  ToastType
}

// Toast renders an alert box for a notification message.
func Toast(p ToastProps, children ...any) *vdom.VNode {
	return element("div", classes("alert", p.Type.String(), p.Class), p.ID, children)
}
