package router

import (
	"net/http"
	"time"

	"freshmart/internal/catalog"
	"freshmart/internal/metrics"
	"freshmart/internal/middleware"
	"freshmart/internal/storefront"
	"freshmart/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog      *catalog.Service
	Sessions     *storefront.Service
	Issuer       *token.Issuer
	Metrics      *metrics.Recorder
	Log          *zap.Logger
	CORSOrigins  []string
	SecureCookie bool
}

func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.AccessLog(d.Log), d.Metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tmpl, err := storefront.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// ───────────────────────── HEALTH / METRICS ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ───────────────────────── CATALOG ─────────────────────────
	catalogHandler := catalog.NewHandler(d.Catalog)

	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.List)
		api.GET("/products/:id", catalogHandler.Get)
		api.GET("/categories", catalogHandler.Categories)
	}

	// ───────────────────────── STOREFRONT ─────────────────────────
	h := storefront.NewHandler(d.Sessions)

	shop := r.Group("/")
	shop.Use(middleware.Session(d.Sessions, d.Issuer, d.SecureCookie, d.Log))
	{
		shop.GET("", h.Index())
		shop.POST("search", h.Search())
		shop.POST("categories/:id/toggle", h.ToggleCategory())

		shop.POST("cart/add/:id", h.AddToCart())
		shop.POST("cart/remove/:id", h.RemoveFromCart())
		shop.POST("cart/quantity/:id", h.UpdateQuantity())
		shop.POST("cart/items/:id/delete", h.RemoveItem())
		shop.POST("cart/open", h.OpenCart())
		shop.POST("cart/close", h.CloseCart())

		shop.GET("api/session", h.GetView())
		shop.POST("api/commands", h.PostCommand())
	}

	return r, nil
}
