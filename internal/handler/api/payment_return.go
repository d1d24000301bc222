package api

import (
	"net/http"

	"clipvault/internal/domain/checkout"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/handler/httperr"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentReturnHandler struct {
	cmds commands.PurchaseCommands
}

func NewPaymentReturnHandler(cmds commands.PurchaseCommands) *PaymentReturnHandler {
	return &PaymentReturnHandler{cmds: cmds}
}

// @Summary Payment return
// @Description Landing route after a provider checkout. Records the purchase and returns the receipt.
// @Tags checkout
// @Produce json
// @Param payment_method query string false "stripe|who|paypal"
// @Param video_id query string false "Video ID"
// @Param offer_type query string false "Offer type"
// @Param session_id query string false "Stripe session id"
// @Param token query string false "PayPal order id"
// @Param payment_canceled query string false "true when the buyer canceled"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payment/return [get]
func (h *PaymentReturnHandler) Return(c *gin.Context) {
	state, err := checkout.ParseReturnState(c.Request.URL.Query())
	if err != nil {
		httperr.AbortWithDomainError(c, errs.Mark(err, errs.ErrInvalidReturnState), "Invalid payment return")
		return
	}

	receipt, err := h.cmds.Record(c.Request.Context(), state)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to record purchase")
		return
	}

	res, err := resdto.FromReceipt(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render receipt", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
