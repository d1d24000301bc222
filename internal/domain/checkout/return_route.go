package checkout

import (
	"net/url"
	"strings"

	"clipvault/internal/domain/payment"
	"clipvault/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Return route query parameters shared by every provider.
const (
	ParamVideoID       = "video_id"
	ParamOfferType     = "offer_type"
	ParamSessionID     = "session_id"
	ParamToken         = "token"
	ParamPaymentMethod = "payment_method"
	ParamBuyerEmail    = "buyer_email"
	ParamBuyerName     = "buyer_name"
	ParamPrice         = "price"
	ParamCanceled      = "payment_canceled"
)

// stripeSessionPlaceholder is substituted by Stripe on redirect and must not be escaped.
const stripeSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

var (
	ErrMissingTarget = errs.New("return state names neither video_id nor offer_type")
	ErrMissingMethod = errs.New("return state has no payment_method")
	ErrInvalidPrice  = errs.New("price must be a non-negative decimal")
)

// Target is what is being bought: one catalog entry or an offer.
type Target struct {
	VideoID   string
	OfferType string
	Price     *decimal.Decimal
}

func (t Target) IsBundle() bool { return t.VideoID == "" && t.OfferType != "" }

type ReturnURLBuilder struct {
	siteURL string
	path    string
}

func NewReturnURLBuilder(siteURL, path string) *ReturnURLBuilder {
	return &ReturnURLBuilder{siteURL: strings.TrimRight(siteURL, "/"), path: path}
}

func (b *ReturnURLBuilder) Success(m payment.Method, t Target) string {
	u := b.base(m, t).Encode()
	if m == payment.MethodStripe {
		u += "&" + ParamSessionID + "=" + stripeSessionPlaceholder
	}
	return b.siteURL + b.path + "?" + u
}

func (b *ReturnURLBuilder) Cancel(m payment.Method, t Target) string {
	q := b.base(m, t)
	q.Set(ParamCanceled, "true")
	return b.siteURL + b.path + "?" + q.Encode()
}

func (b *ReturnURLBuilder) base(m payment.Method, t Target) url.Values {
	q := url.Values{}
	if t.VideoID != "" {
		q.Set(ParamVideoID, t.VideoID)
	}
	if t.OfferType != "" {
		q.Set(ParamOfferType, t.OfferType)
	}
	if t.Price != nil {
		q.Set(ParamPrice, t.Price.StringFixed(2))
	}
	q.Set(ParamPaymentMethod, m.String())
	return q
}

// ReturnState is everything the return route knows; nothing else survives the
// round trip through a provider.
type ReturnState struct {
	Canceled    bool
	Target      Target
	ProviderRef string
	Method      payment.Method
	BuyerEmail  string
	BuyerName   *string
	Raw         map[string]string
}

func ParseReturnState(q url.Values) (ReturnState, error) {
	raw := make(map[string]string, len(q))
	for k := range q {
		raw[k] = q.Get(k)
	}

	st := ReturnState{
		Canceled: strings.EqualFold(q.Get(ParamCanceled), "true"),
		Raw:      raw,
	}

	method, err := parseReturnMethod(q.Get(ParamPaymentMethod))
	if st.Canceled {
		// A canceled return only shows the notice, so a bad method is ignored.
		if err == nil {
			st.Method = method
		}
		return st, nil
	}
	if err != nil {
		return ReturnState{}, err
	}
	st.Method = method

	st.Target = Target{
		VideoID:   strings.TrimSpace(q.Get(ParamVideoID)),
		OfferType: strings.TrimSpace(q.Get(ParamOfferType)),
	}
	if st.Target.VideoID == "" && st.Target.OfferType == "" {
		return ReturnState{}, ErrMissingTarget
	}
	if p := q.Get(ParamPrice); p != "" {
		price, err := decimal.NewFromString(p)
		if err != nil || price.IsNegative() {
			return ReturnState{}, ErrInvalidPrice
		}
		st.Target.Price = &price
	}

	st.ProviderRef = q.Get(ParamSessionID)
	if st.ProviderRef == "" || st.ProviderRef == stripeSessionPlaceholder {
		st.ProviderRef = q.Get(ParamToken)
	}
	st.BuyerEmail = strings.TrimSpace(q.Get(ParamBuyerEmail))
	if n := strings.TrimSpace(q.Get(ParamBuyerName)); n != "" {
		st.BuyerName = &n
	}
	return st, nil
}

// parseReturnMethod accepts only methods whose buyers come back through the
// return route. Manual payments are confirmed by a person.
func parseReturnMethod(raw string) (payment.Method, error) {
	if raw == "" {
		return "", ErrMissingMethod
	}
	m, err := payment.ParseMethod(raw)
	if err != nil {
		return "", err
	}
	if !m.ReturnsThroughRoute() {
		return "", payment.ErrUnknownMethod
	}
	return m, nil
}
