package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"clipvault/internal/handler/api"
	"clipvault/internal/handler/middleware"
	"clipvault/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Catalog        *api.CatalogHandler
	Checkout       *api.CheckoutHandler
	PaymentReturn  *api.PaymentReturnHandler
	Admin          *api.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: p.Config.Checkout.ReturnPath, Handler: p.PaymentReturn.Return, Mw: []gin.HandlerFunc{middleware.NoStore()}},
	})

	apiGroup := engine.Group("/api")
	{
		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Catalog.List},
			{Method: http.MethodGet, Path: "/ids", Handler: p.Catalog.ListIDs},
			{Method: http.MethodGet, Path: "/stream", Handler: p.Catalog.Stream},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Catalog.Get},
			{Method: http.MethodGet, Path: "/:id/previews", Handler: p.Catalog.Previews},
		})

		checkout := apiGroup.Group("/checkout")
		addRoutes(checkout, []route{
			{Method: http.MethodGet, Path: "/providers", Handler: p.Checkout.Providers},
			{Method: http.MethodGet, Path: "/who/proxy", Handler: p.Checkout.WhoProxy},
			{Method: http.MethodPost, Path: "/:provider", Handler: p.Checkout.Start, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodPost, Path: "/:provider/session", Handler: p.Checkout.CreateSession, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Admin.Logout},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(p.AuthMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/videos", Handler: p.Admin.CreateVideo},
				{Method: http.MethodPut, Path: "/videos/:id", Handler: p.Admin.UpdateVideo},
				{Method: http.MethodDelete, Path: "/videos/:id", Handler: p.Admin.DeleteVideo},
				{Method: http.MethodPost, Path: "/videos/:id/previews", Handler: p.Admin.AddPreview},
				{Method: http.MethodDelete, Path: "/videos/:id/previews/:previewId", Handler: p.Admin.RemovePreview},
				{Method: http.MethodGet, Path: "/purchases", Handler: p.Admin.ListPurchases},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
