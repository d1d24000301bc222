package commands

import (
	"context"
	"log/slog"
	"time"

	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/purchase"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	CanceledNotice       = "Payment was canceled. You have not been charged."
	defaultNotifyTimeout = 10 * time.Second
)

// Receipt is what the return page renders.
type Receipt struct {
	Canceled bool
	Notice   string
	Purchase *purchase.Purchase
	// Replayed is set when the transaction id was already recorded.
	Replayed  bool
	Persisted bool
	// AccessLinks is empty when ManualContact should be shown instead.
	AccessLinks   []string
	ManualContact string
}

// Dispatcher runs fn without the caller waiting on it.
type Dispatcher func(fn func())

func GoDispatcher(fn func()) { go fn() }

type PurchaseCommands interface {
	Record(ctx context.Context, st checkout.ReturnState) (*Receipt, error)
}

type purchaseCommandsImpl struct {
	catalog       shared.CatalogStore
	purchases     shared.PurchaseStore
	notifier      shared.SaleNotifier
	offers        config.OffersConfig
	currency      string
	notifyTimeout time.Duration
	dispatch      Dispatcher
	clock         clock.Clock
	logger        *slog.Logger
}

func NewPurchaseCommands(
	catalog shared.CatalogStore,
	purchases shared.PurchaseStore,
	notifier shared.SaleNotifier,
	offers config.OffersConfig,
	currency string,
	notifyTimeout time.Duration,
	dispatch Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) PurchaseCommands {
	if dispatch == nil {
		dispatch = GoDispatcher
	}
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &purchaseCommandsImpl{
		catalog:       catalog,
		purchases:     purchases,
		notifier:      notifier,
		offers:        offers,
		currency:      currency,
		notifyTimeout: notifyTimeout,
		dispatch:      dispatch,
		clock:         clk,
		logger:        logger,
	}
}

type receiptSnapshot struct {
	videoID     *string
	title       string
	productLink string
	amount      decimal.Decimal
}

// Record rebuilds a purchase from return route state. Only an unknown entry
// fails the call: once the provider has taken the money, persistence and
// notification problems are logged and the receipt is still returned.
func (uc *purchaseCommandsImpl) Record(ctx context.Context, st checkout.ReturnState) (*Receipt, error) {
	if st.Canceled {
		return &Receipt{Canceled: true, Notice: CanceledNotice}, nil
	}

	snap, err := uc.snapshot(ctx, st.Target)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	txID := st.ProviderRef
	if txID == "" {
		txID = purchase.SyntheticTransactionID(st.Method, now)
	}

	p := purchase.NewCompleted(purchase.CompletedParams{
		VideoID:       snap.videoID,
		BuyerEmail:    st.BuyerEmail,
		BuyerName:     st.BuyerName,
		TransactionID: txID,
		Method:        st.Method,
		Amount:        snap.amount,
		Currency:      uc.currency,
		VideoTitle:    snap.title,
		ProductLink:   snap.productLink,
		Metadata:      st.Raw,
	}, now)

	receipt := &Receipt{Purchase: p}
	inserted, err := uc.purchases.InsertIfAbsent(ctx, p)
	switch {
	case err != nil:
		uc.logger.Error("purchase persist failed",
			"transaction_id", txID,
			"payment_method", st.Method,
			"error", errs.Mark(err, errs.ErrPersistFailed))
	case !inserted:
		receipt.Replayed = true
		receipt.Persisted = true
		if existing, ferr := uc.purchases.FindByTransactionID(ctx, txID); ferr == nil {
			receipt.Purchase = existing
		} else {
			uc.logger.Warn("replayed purchase lookup failed", "transaction_id", txID, "error", ferr)
		}
		uc.logger.Info("purchase already recorded", "transaction_id", txID)
	default:
		receipt.Persisted = true
	}

	if !receipt.Replayed {
		uc.notify(ctx, p)
	}

	receipt.AccessLinks = receipt.Purchase.AccessLinks()
	if len(receipt.AccessLinks) == 0 {
		receipt.ManualContact = uc.offers.ManualContact
	}
	return receipt, nil
}

func (uc *purchaseCommandsImpl) snapshot(ctx context.Context, t checkout.Target) (receiptSnapshot, error) {
	if t.VideoID != "" {
		e, err := uc.catalog.FindEntry(ctx, t.VideoID)
		if err != nil {
			return receiptSnapshot{}, mapNotFound(err, errs.ErrEntryNotFound)
		}
		id := e.ID
		return receiptSnapshot{videoID: &id, title: e.Title, productLink: e.ProductLink, amount: e.Price}, nil
	}

	if t.OfferType == "" {
		return receiptSnapshot{}, errs.Mark(errs.New("no purchase target"), errs.ErrInvalidReturnState)
	}
	amount := decimal.Zero
	if t.Price != nil {
		amount = *t.Price
	} else if p, err := decimal.NewFromString(uc.offers.BundlePrice); err == nil {
		amount = p
	}
	title := uc.offers.BundleTitle
	if t.OfferType != uc.offers.BundleType {
		title = t.OfferType
	}
	return receiptSnapshot{title: title, productLink: uc.offers.BundleProductLink, amount: amount}, nil
}

func (uc *purchaseCommandsImpl) notify(ctx context.Context, p *purchase.Purchase) {
	ev := shared.SaleEvent{
		TransactionID: p.TransactionID,
		Method:        p.PaymentMethod.String(),
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		Item:          p.VideoTitle,
		VideoID:       p.VideoID,
		BuyerEmail:    p.BuyerEmail,
		At:            p.CreatedAt,
	}
	detached := context.WithoutCancel(ctx)

	uc.dispatch(func() {
		nctx, cancel := context.WithTimeout(detached, uc.notifyTimeout)
		defer cancel()
		if err := uc.notifier.NotifySale(nctx, ev); err != nil {
			uc.logger.Warn("sale notification failed",
				"transaction_id", ev.TransactionID,
				"error", errs.Mark(err, errs.ErrNotificationFailed))
		}
	})
}
