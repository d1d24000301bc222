//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/payment"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/shared"
	"clipvault/tests/common/builder"
	queriesmock "clipvault/tests/mock/queries"
	sharedmock "clipvault/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	entries  *queriesmock.MockCatalogQueries
	stripe   *sharedmock.MockSessionCreator
	paypal   *sharedmock.MockSessionCreator
	who      *sharedmock.MockSessionCreator
	cfg      config.Config
	names    *checkout.ProductNameRotator
	cmds     commands.CheckoutCommands
	video    catalog.Entry
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.entries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.stripe = sharedmock.NewMockSessionCreator(s.mockCtrl)
	s.paypal = sharedmock.NewMockSessionCreator(s.mockCtrl)
	s.who = sharedmock.NewMockSessionCreator(s.mockCtrl)

	s.cfg = config.NewTestConfig()
	s.cfg.Checkout.Stripe.SecretKey = "sk_test"
	s.cfg.Checkout.Whop.APIKey = "whop_key"
	s.cfg.Checkout.Whop.PlanID = "plan_1"
	s.cfg.Checkout.Crypto.Wallets = map[string]string{"BTC": "bc1qexample"}
	s.cfg.Checkout.Crypto.TelegramUsername = "@seller"
	s.build()

	s.video = builder.NewVideoBuilder().BuildDomain()
}

func (s *CheckoutCommandsTestSuite) build() {
	s.names = checkout.NewProductNameRotator()
	s.cmds = commands.NewCheckoutCommands(
		s.entries,
		map[payment.Method]shared.SessionCreator{
			payment.MethodStripe: s.stripe,
			payment.MethodPayPal: s.paypal,
			payment.MethodWho:    s.who,
		},
		s.cfg.Checkout,
		s.cfg.Offers,
		s.names,
		clock.NewMockClock(time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)),
		slog.New(slog.DiscardHandler),
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestAvailability() {
	got := s.cmds.Availability()
	s.Equal(map[payment.Method]bool{
		payment.MethodStripe: true,
		payment.MethodPayPal: false,
		payment.MethodWho:    true,
		payment.MethodCrypto: true,
	}, got)
}

func (s *CheckoutCommandsTestSuite) TestMissingConfigurationMakesNoCall() {
	// paypal has no credentials; the creator mock has no expectations
	_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodPayPal, VideoID: s.video.ID})
	s.True(errs.Is(err, errs.ErrConfigurationMissing))

	_, err = s.cmds.CreateSession(s.ctx, payment.MethodPayPal, shared.SessionRequest{
		AmountMinorUnits: 100, SuccessURL: "https://x", CancelURL: "https://y",
	}, "")
	s.True(errs.Is(err, errs.ErrConfigurationMissing))
}

func (s *CheckoutCommandsTestSuite) TestHostedSession() {
	s.Run("success: stripe redirect", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)
		s.stripe.EXPECT().CreateSession(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
				s.Equal(int64(1250), req.AmountMinorUnits)
				s.Equal("usd", req.Currency)
				s.True(s.names.IsGeneric(req.ProductName))
				s.NotContains(req.ProductName, s.video.Title)
				s.True(strings.HasSuffix(req.SuccessURL, "session_id={CHECKOUT_SESSION_ID}"))
				s.Contains(req.CancelURL, "payment_canceled=true")
				return &shared.SessionResult{SessionID: "cs_1", CheckoutURL: "https://checkout.stripe.test/cs_1"}, nil
			})

		res, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, VideoID: s.video.ID})
		s.Require().NoError(err)
		s.Equal(checkout.NavigateRedirect, res.Navigation.Mode)
		s.Equal("https://checkout.stripe.test/cs_1", res.Navigation.URL)
		s.Equal("cs_1", res.SessionID)
	})

	s.Run("error: upstream failure is passed through", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)
		upstream := errs.WithHint(errs.Mark(errs.New("stripe 402"), errs.ErrUpstreamSessionCreationFailed), "card declined")
		s.stripe.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(nil, upstream)

		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, VideoID: s.video.ID})
		s.True(errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
		s.Equal("card declined", errs.Hint(err))
	})

	s.Run("error: session without url", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)
		s.stripe.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(&shared.SessionResult{SessionID: "cs_2"}, nil)

		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, VideoID: s.video.ID})
		s.True(errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
	})

	s.Run("success: bundle uses the configured price", func() {
		s.stripe.EXPECT().CreateSession(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
				s.Equal(int64(4900), req.AmountMinorUnits)
				s.Contains(req.SuccessURL, "offer_type=bundle")
				return &shared.SessionResult{CheckoutURL: "https://checkout.stripe.test/b"}, nil
			})

		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, OfferType: "bundle"})
		s.NoError(err)
	})
}

func (s *CheckoutCommandsTestSuite) TestTargetValidation() {
	s.Run("unknown entry", func() {
		s.entries.EXPECT().GetOne(s.ctx, "missing").Return(catalog.Entry{}, errs.Mark(errs.New("entry missing"), errs.ErrEntryNotFound))
		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, VideoID: "missing"})
		s.True(errs.Is(err, errs.ErrEntryNotFound))
	})

	s.Run("free entry", func() {
		free := s.video
		free.IsFree = true
		s.entries.EXPECT().GetOne(s.ctx, free.ID).Return(free, nil)
		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, VideoID: free.ID})
		s.True(errs.Is(err, errs.ErrInvalidCheckoutRequest))
	})

	s.Run("no target", func() {
		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodStripe, OfferType: "mystery"})
		s.True(errs.Is(err, errs.ErrInvalidCheckoutRequest))
	})
}

func (s *CheckoutCommandsTestSuite) TestProxiedRedirectStart() {
	s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)

	res, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodWho, VideoID: s.video.ID})
	s.Require().NoError(err)
	s.Equal(checkout.NavigateNewContext, res.Navigation.Mode)
	s.Require().NotNil(res.Navigation.Fallback)
	s.Equal(checkout.NavigateSameContext, res.Navigation.Fallback.Mode)

	u, err := url.Parse(res.Navigation.URL)
	s.Require().NoError(err)
	s.Equal("/api/checkout/who/proxy", u.Path)
	s.Equal("12.50", u.Query().Get("amount"))
	s.True(strings.HasPrefix(u.Query().Get("success_url"), "http://shop.test/payment/return?"))
	s.Equal(res.ProductName, u.Query().Get("product_name"))
}

func (s *CheckoutCommandsTestSuite) TestManualFlow() {
	s.Run("success: deep link carries the order message", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)

		res, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodCrypto, VideoID: s.video.ID, CryptoCurrency: "btc"})
		s.Require().NoError(err)
		s.Equal(checkout.NavigateDeepLink, res.Navigation.Mode)
		s.True(strings.HasPrefix(res.Navigation.URL, "https://t.me/seller?text="))
		s.Contains(res.Message, "Wallet: bc1qexample")
		s.Contains(res.Message, "Amount: 12.50 USD")
		s.Contains(res.Message, s.video.Title)
	})

	s.Run("error: unknown wallet", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)

		_, err := s.cmds.Checkout(s.ctx, commands.CheckoutRequest{Method: payment.MethodCrypto, VideoID: s.video.ID, CryptoCurrency: "XMR"})
		s.True(errs.Is(err, errs.ErrWalletNotConfigured))
	})
}

func (s *CheckoutCommandsTestSuite) TestIdempotencyKeyCoalesces() {
	entered := make(chan struct{})
	release := make(chan struct{})
	s.stripe.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, shared.SessionRequest) (*shared.SessionResult, error) {
			close(entered)
			<-release
			return &shared.SessionResult{SessionID: "cs_once", CheckoutURL: "https://checkout.stripe.test/once"}, nil
		}).Times(1)

	req := shared.SessionRequest{AmountMinorUnits: 500, SuccessURL: "https://a.test/s", CancelURL: "https://a.test/c"}
	results := make([]*shared.SessionResult, 3)
	var wg sync.WaitGroup
	call := func(i int) {
		defer wg.Done()
		res, err := s.cmds.CreateSession(s.ctx, payment.MethodStripe, req, "key-1")
		s.NoError(err)
		results[i] = res
	}

	wg.Add(1)
	go call(0)
	<-entered
	wg.Add(2)
	go call(1)
	go call(2)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		s.Require().NotNil(r)
		s.Equal("cs_once", r.SessionID)
	}
}

func (s *CheckoutCommandsTestSuite) TestIdempotencyKeyIsScopedToRequest() {
	s.stripe.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
			return &shared.SessionResult{SessionID: req.SuccessURL}, nil
		}).Times(2)

	a, err := s.cmds.CreateSession(s.ctx, payment.MethodStripe,
		shared.SessionRequest{AmountMinorUnits: 500, SuccessURL: "https://a.test/s?video_id=A", CancelURL: "https://a.test/c"}, "key-1")
	s.Require().NoError(err)
	b, err := s.cmds.CreateSession(s.ctx, payment.MethodStripe,
		shared.SessionRequest{AmountMinorUnits: 900, SuccessURL: "https://a.test/s?video_id=B", CancelURL: "https://a.test/c"}, "key-1")
	s.Require().NoError(err)

	s.Equal("https://a.test/s?video_id=A", a.SessionID)
	s.Equal("https://a.test/s?video_id=B", b.SessionID)
}

func (s *CheckoutCommandsTestSuite) TestCoalescedCallSurvivesLeaderCancel() {
	entered := make(chan struct{})
	release := make(chan struct{})
	s.stripe.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ shared.SessionRequest) (*shared.SessionResult, error) {
			close(entered)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &shared.SessionResult{SessionID: "cs_shared"}, nil
		}).Times(1)

	req := shared.SessionRequest{AmountMinorUnits: 500, SuccessURL: "https://a.test/s", CancelURL: "https://a.test/c"}
	leaderCtx, cancel := context.WithCancel(s.ctx)

	var (
		wg       sync.WaitGroup
		follower *shared.SessionResult
		errF     error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.cmds.CreateSession(leaderCtx, payment.MethodStripe, req, "key-2")
	}()
	<-entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		follower, errF = s.cmds.CreateSession(s.ctx, payment.MethodStripe, req, "key-2")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(release)
	wg.Wait()

	s.Require().NoError(errF)
	s.Equal("cs_shared", follower.SessionID)
}

func (s *CheckoutCommandsTestSuite) TestCreateSession() {
	s.Run("error: proxied method has no hosted session", func() {
		_, err := s.cmds.CreateSession(s.ctx, payment.MethodWho, shared.SessionRequest{}, "")
		s.True(errs.Is(err, errs.ErrUnsupportedProvider))
	})

	s.Run("error: missing urls", func() {
		_, err := s.cmds.CreateSession(s.ctx, payment.MethodStripe, shared.SessionRequest{AmountMinorUnits: 100}, "")
		s.True(errs.Is(err, errs.ErrInvalidCheckoutRequest))
	})

	s.Run("success: descriptive names are replaced", func() {
		s.stripe.EXPECT().CreateSession(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
				s.True(s.names.IsGeneric(req.ProductName))
				s.Equal("usd", req.Currency)
				return &shared.SessionResult{SessionID: "cs_3"}, nil
			})

		res, err := s.cmds.CreateSession(s.ctx, payment.MethodStripe, shared.SessionRequest{
			AmountMinorUnits: 100, ProductName: "Sunset Timelapse", SuccessURL: "https://a.test/s", CancelURL: "https://a.test/c",
		}, "")
		s.Require().NoError(err)
		s.Equal("cs_3", res.SessionID)
	})
}

func (s *CheckoutCommandsTestSuite) TestProxyRedirect() {
	b := checkout.NewReturnURLBuilder(s.cfg.Checkout.SiteURL, s.cfg.Checkout.ReturnPath)
	target := checkout.Target{VideoID: s.video.ID}
	valid := commands.ProxyRequest{
		Amount:     "12.50",
		VideoID:    s.video.ID,
		SuccessURL: b.Success(payment.MethodWho, target),
		CancelURL:  b.Cancel(payment.MethodWho, target),
	}

	s.Run("success", func() {
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)
		s.who.EXPECT().CreateSession(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
				s.Equal(int64(1250), req.AmountMinorUnits)
				s.Equal(valid.SuccessURL, req.SuccessURL)
				return &shared.SessionResult{CheckoutURL: "https://whop.test/c/1"}, nil
			})

		got, err := s.cmds.ProxyRedirect(s.ctx, valid)
		s.Require().NoError(err)
		s.Equal("https://whop.test/c/1", got)
	})

	s.Run("error: tampered amount", func() {
		req := valid
		req.Amount = "0.01"
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)

		_, err := s.cmds.ProxyRedirect(s.ctx, req)
		s.True(errs.Is(err, errs.ErrInvalidCheckoutRequest))
	})

	s.Run("error: foreign return url", func() {
		req := valid
		req.SuccessURL = "https://evil.test/collect"
		s.entries.EXPECT().GetOne(s.ctx, s.video.ID).Return(s.video, nil)

		_, err := s.cmds.ProxyRedirect(s.ctx, req)
		s.True(errs.Is(err, errs.ErrInvalidCheckoutRequest))
	})

	s.Run("error: whop not configured", func() {
		s.cfg.Checkout.Whop.APIKey = ""
		s.build()

		_, err := s.cmds.ProxyRedirect(s.ctx, valid)
		s.True(errs.Is(err, errs.ErrConfigurationMissing))
	})
}
