package payment

import (
	"strings"

	"clipvault/internal/pkg/errs"
)

var ErrUnknownMethod = errs.New("unknown payment method")

type Method string

const (
	MethodStripe Method = "stripe"
	MethodWho    Method = "who"
	MethodPayPal Method = "paypal"
	MethodCrypto Method = "crypto"
)

// Flow is the checkout shape a method follows.
type Flow int

const (
	FlowHostedSession Flow = iota + 1
	FlowProxiedRedirect
	FlowManual
)

func (f Flow) String() string {
	switch f {
	case FlowHostedSession:
		return "hosted_session"
	case FlowProxiedRedirect:
		return "proxied_redirect"
	case FlowManual:
		return "manual"
	default:
		return "unknown"
	}
}

var Methods = []Method{MethodStripe, MethodWho, MethodPayPal, MethodCrypto}

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodStripe, MethodWho, MethodPayPal, MethodCrypto:
		return m, nil
	default:
		return "", ErrUnknownMethod
	}
}

func (m Method) String() string { return string(m) }

func (m Method) Flow() Flow {
	switch m {
	case MethodStripe, MethodPayPal:
		return FlowHostedSession
	case MethodWho:
		return FlowProxiedRedirect
	default:
		return FlowManual
	}
}

// ReturnsThroughRoute reports whether the buyer comes back via the return route.
func (m Method) ReturnsThroughRoute() bool {
	return m.Flow() != FlowManual
}
