package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/payment"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// EntryLookup resolves the entry being bought.
type EntryLookup interface {
	GetOne(ctx context.Context, id string) (catalog.Entry, error)
}

type CheckoutRequest struct {
	Method    payment.Method
	VideoID   string
	OfferType string
	// CryptoCurrency picks the wallet for the manual flow, e.g. "BTC".
	CryptoCurrency string
	// IdempotencyKey coalesces duplicate in-flight hosted session requests.
	IdempotencyKey string
}

type CheckoutResult struct {
	Method      payment.Method
	Navigation  checkout.Navigation
	SessionID   string
	ProductName string
	// Message is the prefilled manual payment message (crypto only).
	Message string
}

type ProxyRequest struct {
	Amount      string
	Currency    string
	VideoID     string
	OfferType   string
	SuccessURL  string
	CancelURL   string
	ProductName string
}

type CheckoutCommands interface {
	Availability() map[payment.Method]bool
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	CreateSession(ctx context.Context, method payment.Method, req shared.SessionRequest, idempotencyKey string) (*shared.SessionResult, error)
	ProxyRedirect(ctx context.Context, req ProxyRequest) (string, error)
}

type checkoutCommandsImpl struct {
	entries  EntryLookup
	creators map[payment.Method]shared.SessionCreator
	cfg      config.CheckoutConfig
	offers   config.OffersConfig
	returns  *checkout.ReturnURLBuilder
	names    *checkout.ProductNameRotator
	clock    clock.Clock
	logger   *slog.Logger
	inflight singleflight.Group
}

func NewCheckoutCommands(
	entries EntryLookup,
	creators map[payment.Method]shared.SessionCreator,
	cfg config.CheckoutConfig,
	offers config.OffersConfig,
	names *checkout.ProductNameRotator,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		entries:  entries,
		creators: creators,
		cfg:      cfg,
		offers:   offers,
		returns:  checkout.NewReturnURLBuilder(cfg.SiteURL, cfg.ReturnPath),
		names:    names,
		clock:    clk,
		logger:   logger,
	}
}

// Availability reports which methods have their credentials configured.
// It only gates methods; callers still choose one explicitly.
func (uc *checkoutCommandsImpl) Availability() map[payment.Method]bool {
	return map[payment.Method]bool{
		payment.MethodStripe: uc.cfg.Stripe.SecretKey != "",
		payment.MethodPayPal: uc.cfg.PayPal.ClientID != "" && uc.cfg.PayPal.ClientSecret != "",
		payment.MethodWho:    uc.cfg.Whop.APIKey != "" && uc.cfg.Whop.PlanID != "",
		payment.MethodCrypto: len(uc.cfg.Crypto.Wallets) > 0 && uc.cfg.Crypto.TelegramUsername != "",
	}
}

func (uc *checkoutCommandsImpl) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if err := uc.requireConfigured(req.Method); err != nil {
		return nil, err
	}

	target, title, err := uc.resolveTarget(ctx, req.VideoID, req.OfferType)
	if err != nil {
		return nil, err
	}

	switch req.Method.Flow() {
	case payment.FlowHostedSession:
		return uc.hostedSession(ctx, req, target)
	case payment.FlowProxiedRedirect:
		return uc.proxiedRedirect(req, target), nil
	case payment.FlowManual:
		return uc.manual(req, target, title)
	default:
		return nil, errs.Mark(errs.Newf("method %q", req.Method), errs.ErrUnsupportedProvider)
	}
}

// CreateSession is the bare session contract for hosted providers.
func (uc *checkoutCommandsImpl) CreateSession(ctx context.Context, method payment.Method, req shared.SessionRequest, idempotencyKey string) (*shared.SessionResult, error) {
	if method.Flow() != payment.FlowHostedSession {
		return nil, errs.Mark(errs.Newf("method %q has no hosted session", method), errs.ErrUnsupportedProvider)
	}
	if err := uc.requireConfigured(method); err != nil {
		return nil, err
	}
	if req.AmountMinorUnits < 0 || req.SuccessURL == "" || req.CancelURL == "" {
		return nil, errs.Mark(errs.New("amount, success and cancel url are required"), errs.ErrInvalidCheckoutRequest)
	}
	if req.Currency == "" {
		req.Currency = uc.cfg.Currency
	}
	if !uc.names.IsGeneric(req.ProductName) {
		req.ProductName = uc.names.Next()
	}
	return uc.createCoalesced(ctx, method, req, idempotencyKey)
}

// ProxyRedirect creates the Whop checkout for a proxied redirect and returns
// the URL the browser should be sent to. The amount is checked against the
// catalog rather than trusted.
func (uc *checkoutCommandsImpl) ProxyRedirect(ctx context.Context, req ProxyRequest) (string, error) {
	if err := uc.requireConfigured(payment.MethodWho); err != nil {
		return "", err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return "", errs.Mark(errs.New("amount must be a decimal"), errs.ErrInvalidCheckoutRequest)
	}
	target, _, err := uc.resolveTarget(ctx, req.VideoID, req.OfferType)
	if err != nil {
		return "", err
	}
	if !target.Amount.Equal(amount) {
		return "", errs.Mark(errs.Newf("amount %s does not match price %s", amount, target.Amount), errs.ErrInvalidCheckoutRequest)
	}
	if !uc.isReturnURL(req.SuccessURL) || !uc.isReturnURL(req.CancelURL) {
		return "", errs.Mark(errs.New("success and cancel url must point at the return route"), errs.ErrInvalidCheckoutRequest)
	}

	name := req.ProductName
	if !uc.names.IsGeneric(name) {
		name = uc.names.Next()
	}
	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.Currency
	}

	res, err := uc.creators[payment.MethodWho].CreateSession(ctx, shared.SessionRequest{
		AmountMinorUnits: catalog.MinorUnits(amount),
		Currency:         currency,
		ProductName:      name,
		SuccessURL:       req.SuccessURL,
		CancelURL:        req.CancelURL,
	})
	if err != nil {
		return "", err
	}
	if res.CheckoutURL == "" {
		return "", errs.Mark(errs.New("whop returned no checkout url"), errs.ErrUpstreamSessionCreationFailed)
	}
	return res.CheckoutURL, nil
}

type checkoutTarget struct {
	checkout.Target
	Amount decimal.Decimal
}

func (uc *checkoutCommandsImpl) resolveTarget(ctx context.Context, videoID, offerType string) (checkoutTarget, string, error) {
	switch {
	case videoID != "":
		e, err := uc.entries.GetOne(ctx, videoID)
		if err != nil {
			return checkoutTarget{}, "", err
		}
		if e.IsFree {
			return checkoutTarget{}, "", errs.Mark(errs.Newf("entry %s is free", videoID), errs.ErrInvalidCheckoutRequest)
		}
		return checkoutTarget{Target: checkout.Target{VideoID: e.ID}, Amount: e.Price}, e.Title, nil
	case offerType != "" && offerType == uc.offers.BundleType:
		price, err := decimal.NewFromString(uc.offers.BundlePrice)
		if err != nil {
			return checkoutTarget{}, "", errs.Mark(errs.Wrap(err, "bundle price"), errs.ErrConfigurationMissing)
		}
		return checkoutTarget{Target: checkout.Target{OfferType: offerType, Price: &price}, Amount: price}, uc.offers.BundleTitle, nil
	default:
		return checkoutTarget{}, "", errs.Mark(errs.New("video_id or a known offer_type is required"), errs.ErrInvalidCheckoutRequest)
	}
}

func (uc *checkoutCommandsImpl) hostedSession(ctx context.Context, req CheckoutRequest, t checkoutTarget) (*CheckoutResult, error) {
	sreq := shared.SessionRequest{
		AmountMinorUnits: catalog.MinorUnits(t.Amount),
		Currency:         uc.cfg.Currency,
		ProductName:      uc.names.Next(),
		SuccessURL:       uc.returns.Success(req.Method, t.Target),
		CancelURL:        uc.returns.Cancel(req.Method, t.Target),
	}

	res, err := uc.createCoalesced(ctx, req.Method, sreq, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if res.CheckoutURL == "" {
		return nil, errs.Mark(errs.Newf("%s returned no checkout url", req.Method), errs.ErrUpstreamSessionCreationFailed)
	}

	return &CheckoutResult{
		Method:      req.Method,
		Navigation:  checkout.Redirect(res.CheckoutURL),
		SessionID:   res.SessionID,
		ProductName: sreq.ProductName,
	}, nil
}

func (uc *checkoutCommandsImpl) createCoalesced(ctx context.Context, method payment.Method, req shared.SessionRequest, key string) (*shared.SessionResult, error) {
	creator, ok := uc.creators[method]
	if !ok {
		return nil, errs.Mark(errs.Newf("no client for %q", method), errs.ErrUnsupportedProvider)
	}
	if key == "" {
		return creator.CreateSession(ctx, req)
	}

	// Followers share the leader's call, so it must outlive the leader's request.
	detached := context.WithoutCancel(ctx)
	v, err, dup := uc.inflight.Do(coalesceKey(method, key, req), func() (any, error) {
		return creator.CreateSession(detached, req)
	})
	if dup {
		uc.logger.Info("coalesced duplicate checkout session request", "method", method, "idempotency_key", key)
	}
	if err != nil {
		return nil, err
	}
	return v.(*shared.SessionResult), nil
}

// coalesceKey scopes an idempotency key to the request it was sent with. The
// product name rotates per call and is left out.
func coalesceKey(method payment.Method, key string, req shared.SessionRequest) string {
	h := sha256.New()
	for _, part := range []string{
		strconv.FormatInt(req.AmountMinorUnits, 10),
		strings.ToLower(req.Currency),
		req.SuccessURL,
		req.CancelURL,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return method.String() + ":" + key + ":" + hex.EncodeToString(h.Sum(nil))
}

func (uc *checkoutCommandsImpl) proxiedRedirect(req CheckoutRequest, t checkoutTarget) *CheckoutResult {
	name := uc.names.Next()
	q := url.Values{}
	q.Set("amount", t.Amount.StringFixed(2))
	q.Set("currency", uc.cfg.Currency)
	if t.VideoID != "" {
		q.Set("video_id", t.VideoID)
	}
	if t.OfferType != "" {
		q.Set("offer_type", t.OfferType)
	}
	q.Set("success_url", uc.returns.Success(req.Method, t.Target))
	q.Set("cancel_url", uc.returns.Cancel(req.Method, t.Target))
	q.Set("product_name", name)

	proxyURL := strings.TrimRight(uc.cfg.SiteURL, "/") + uc.cfg.Whop.ProxyPath + "?" + q.Encode()
	return &CheckoutResult{
		Method:      req.Method,
		Navigation:  checkout.NewContext(proxyURL),
		ProductName: name,
	}
}

func (uc *checkoutCommandsImpl) manual(req CheckoutRequest, t checkoutTarget, title string) (*CheckoutResult, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.CryptoCurrency))
	wallet, ok := uc.cfg.Crypto.Wallets[currency]
	if currency == "" || !ok || wallet == "" {
		return nil, errs.Mark(errs.Newf("no wallet for %q", currency), errs.ErrWalletNotConfigured)
	}

	itemID := t.VideoID
	if itemID == "" {
		itemID = t.OfferType
	}
	order := checkout.ManualOrder{
		Amount:    t.Amount,
		ItemID:    itemID,
		ItemTitle: title,
		Currency:  currency,
		Wallet:    wallet,
		At:        uc.clock.Now(),
	}
	msg := order.Message()

	return &CheckoutResult{
		Method:     req.Method,
		Navigation: checkout.DeepLink(checkout.TelegramDeepLink(uc.cfg.Crypto.TelegramUsername, msg)),
		Message:    msg,
	}, nil
}

func (uc *checkoutCommandsImpl) requireConfigured(m payment.Method) error {
	available, known := uc.Availability()[m]
	if !known {
		return errs.Mark(errs.Newf("method %q", m), errs.ErrUnsupportedProvider)
	}
	if !available {
		return errs.Mark(errs.Newf("%s credentials are not configured", m), errs.ErrConfigurationMissing)
	}
	return nil
}

func (uc *checkoutCommandsImpl) isReturnURL(raw string) bool {
	prefix := strings.TrimRight(uc.cfg.SiteURL, "/") + uc.cfg.ReturnPath + "?"
	return strings.HasPrefix(raw, prefix)
}
