package api

import (
	"net/http"

	"clipvault/internal/domain/payment"
	reqdto "clipvault/internal/handler/dto/request"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/handler/httperr"
	"clipvault/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const idempotencyKeyHeader = "Idempotency-Key"

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Payment providers
// @Description Which payment methods are configured. Unavailable ones should be shown disabled.
// @Tags checkout
// @Produce json
// @Success 200 {array} resdto.ProviderResponse
// @Router /api/checkout/providers [get]
func (h *CheckoutHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAvailability(h.cmds.Availability()))
}

// @Summary Start checkout
// @Description Starts a checkout with the chosen provider and returns how the client should navigate
// @Tags checkout
// @Accept json
// @Produce json
// @Param provider path string true "stripe|who|paypal|crypto"
// @Param Idempotency-Key header string false "Coalesces duplicate submissions"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/{provider} [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Checkout(c.Request.Context(), req.ToCommand(method, c.GetHeader(idempotencyKeyHeader)))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(res))
}

// @Summary Create hosted session
// @Description Creates a provider-hosted checkout session (stripe, paypal)
// @Tags checkout
// @Accept json
// @Produce json
// @Param provider path string true "stripe|paypal"
// @Param Idempotency-Key header string false "Coalesces duplicate submissions"
// @Param request body reqdto.SessionRequest true "Session request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/{provider}/session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}

	var req reqdto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.CreateSession(c.Request.Context(), method, req.ToShared(), c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Session creation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionResult(res))
}

// @Summary Proxied checkout redirect
// @Description Creates the Whop checkout and redirects the browser to it
// @Tags checkout
// @Param amount query string true "Decimal amount"
// @Param video_id query string false "Video ID"
// @Param offer_type query string false "Offer type"
// @Param success_url query string true "Return route URL"
// @Param cancel_url query string true "Return route URL"
// @Success 302
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/who/proxy [get]
func (h *CheckoutHandler) WhoProxy(c *gin.Context) {
	var q reqdto.ProxyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid proxy request", nil)
		return
	}

	target, err := h.cmds.ProxyRedirect(c.Request.Context(), q.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Checkout failed")
		return
	}
	c.Redirect(http.StatusFound, target)
}

func (h *CheckoutHandler) method(c *gin.Context) (payment.Method, bool) {
	m, err := payment.ParseMethod(c.Param("provider"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method", gin.H{"allowed": payment.Methods})
		return "", false
	}
	return m, true
}
