package api

import (
	"errors"
	"net/http"
	"time"

	"clipvault/internal/domain/catalog"
	reqdto "clipvault/internal/handler/dto/request"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/handler/httperr"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/cookie"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth      usecase.AdminAuthUseCase
	catalog   commands.CatalogCommands
	purchases queries.PurchaseQueries
	cookieCfg config.CookieConfig
}

func NewAdminHandler(auth usecase.AdminAuthUseCase, catalog commands.CatalogCommands, purchases queries.PurchaseQueries, cookieCfg config.CookieConfig) *AdminHandler {
	return &AdminHandler{auth: auth, catalog: catalog, purchases: purchases, cookieCfg: cookieCfg}
}

// @Summary Admin login
// @Description Exchanges the admin password for a token, also set as a cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	tok, err := h.auth.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAdminLoginDisabled):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Admin login is disabled", nil)
		case errs.Is(err, errs.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, tok.Token, time.Until(tok.ExpiresAt))
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: tok.Token, ExpiresAt: tok.ExpiresAt.Unix()})
}

// @Summary Admin logout
// @Tags admin
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Create video
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVideoRequest true "Video"
// @Success 201 {object} resdto.AdminVideoResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/videos [post]
func (h *AdminHandler) CreateVideo(c *gin.Context) {
	var req reqdto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid video data")
		return
	}

	e, err := h.catalog.CreateEntry(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to create video")
		return
	}
	h.respondVideo(c, http.StatusCreated, e)
}

// @Summary Update video
// @Description Partial update; omitted fields are kept
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Param request body reqdto.UpdateVideoRequest true "Changes"
// @Success 200 {object} resdto.AdminVideoResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/videos/{id} [put]
func (h *AdminHandler) UpdateVideo(c *gin.Context) {
	var req reqdto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid video data")
		return
	}

	e, err := h.catalog.UpdateEntry(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to update video")
		return
	}
	h.respondVideo(c, http.StatusOK, e)
}

// @Summary Delete video
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/videos/{id} [delete]
func (h *AdminHandler) DeleteVideo(c *gin.Context) {
	if err := h.catalog.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to delete video")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add preview source
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Param request body reqdto.CreatePreviewRequest true "Preview"
// @Success 201 {object} resdto.PreviewResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/videos/{id}/previews [post]
func (h *AdminHandler) AddPreview(c *gin.Context) {
	var req reqdto.CreatePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	p, err := h.catalog.AddPreview(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to add preview")
		return
	}
	c.JSON(http.StatusCreated, resdto.PreviewResponse{ID: p.ID, URL: p.URL, Position: p.Position})
}

// @Summary Remove preview source
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Param previewId path string true "Preview ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/videos/{id}/previews/{previewId} [delete]
func (h *AdminHandler) RemovePreview(c *gin.Context) {
	if err := h.catalog.RemovePreview(c.Request.Context(), c.Param("id"), c.Param("previewId")); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to remove preview")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List purchases
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.PurchaseListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/purchases [get]
func (h *AdminHandler) ListPurchases(c *gin.Context) {
	var q reqdto.PurchaseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, next, err := h.purchases.List(c.Request.Context(), &queries.Cursor{After: q.After}, q.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list purchases", nil)
		return
	}

	res, err := resdto.FromPurchaseList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render purchases", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) respondVideo(c *gin.Context, status int, e *catalog.Entry) {
	res, err := resdto.FromEntryAdmin(*e)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render video", nil)
		return
	}
	c.JSON(status, res)
}
