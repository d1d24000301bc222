//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/payment"
	"clipvault/internal/handler/api"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/usecase/commands"
	"clipvault/tests/common/builder"
	"clipvault/tests/common/httptest"
	commandsmock "clipvault/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentReturnHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
}

func (s *PaymentReturnHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	h := api.NewPaymentReturnHandler(s.mockCommands)
	s.router.GET("/payment/return", h.Return)
}

func (s *PaymentReturnHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentReturnHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentReturnHandlerTestSuite))
}

func (s *PaymentReturnHandlerTestSuite) TestReturn() {
	s.Run("success: stripe purchase is recorded and links are returned", func() {
		p := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) {
			b.TransactionID = "cs_test_1"
		}).BuildDomain()

		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, st checkout.ReturnState) (*commands.Receipt, error) {
				s.False(st.Canceled)
				s.Equal(payment.MethodStripe, st.Method)
				s.Equal("V1", st.Target.VideoID)
				s.Equal("cs_test_1", st.ProviderRef)
				return &commands.Receipt{
					Purchase:    p,
					Persisted:   true,
					AccessLinks: []string{p.ProductLink},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/payment/return?payment_method=stripe&video_id=V1&session_id=cs_test_1", nil, "")

		var res resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Recorded)
		s.False(res.Replayed)
		s.Equal([]string{"https://files.example.com/sunset"}, res.AccessLinks)
		s.Require().NotNil(res.Purchase)
		s.Equal("cs_test_1", res.Purchase.TransactionID)
		s.Equal("stripe", res.Purchase.PaymentMethod)
		s.Equal("12.50", res.Purchase.Amount)
		s.Equal("completed", res.Purchase.Status)
	})

	s.Run("success: cancel returns a notice and no purchase", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, st checkout.ReturnState) (*commands.Receipt, error) {
				s.True(st.Canceled)
				return &commands.Receipt{Canceled: true, Notice: "Payment canceled."}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment/return?payment_canceled=true", nil, "")

		var res resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Canceled)
		s.Nil(res.Purchase)
		s.Equal([]string{}, res.AccessLinks)
	})

	s.Run("success: cancel wins over an unusable method", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, st checkout.ReturnState) (*commands.Receipt, error) {
				s.True(st.Canceled)
				s.Empty(st.Method)
				return &commands.Receipt{Canceled: true, Notice: "Payment canceled."}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment/return?payment_canceled=true&payment_method=bogus", nil, "")

		var res resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Canceled)
	})

	s.Run("success: manual contact when there are no links", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(&commands.Receipt{Persisted: true, ManualContact: "Contact support for access."}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment/return?payment_method=paypal&offer_type=bundle&token=ORDER-1", nil, "")

		var res resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Contact support for access.", res.ManualContact)
	})

	s.Run("error: 400 for an unparseable return", func() {
		for _, q := range []string{
			"video_id=V1",
			"payment_method=cash&video_id=V1",
			"payment_method=crypto&video_id=V1&session_id=x",
			"payment_method=stripe",
			"payment_method=who&video_id=V1&price=abc",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment/return?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment return")
		}
	})

	s.Run("error: 500 when recording fails outright", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payment/return?payment_method=stripe&video_id=V1&session_id=cs_1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to record purchase")
	})
}
