package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

type Options struct {
	CORSOrigins []string
	Sessions    sessions.Store
	// Ready backs /readyz; nil means always ready.
	Ready func(ctx context.Context) error
}

func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) {
		if opts.Ready != nil {
			if err := opts.Ready(c.Request.Context()); err != nil {
				h.log.Warn("not ready", slog.Any("err", err))
				c.Status(http.StatusServiceUnavailable)
				return
			}
		}
		c.Status(http.StatusOK)
	})

	api := r.Group("/api")
	api.Use(shopperSession(opts.Sessions, h.log))
	{
		products := api.Group("/products")
		{
			products.GET("", h.ListProducts)
			products.GET("/featured", h.FeaturedProducts)
			products.GET("/:id", h.GetProduct)
			products.GET("/:id/related", h.RelatedProducts)
		}
		api.GET("/search/suggestions", h.SearchSuggestions)

		cart := api.Group("/cart")
		{
			cart.GET("", h.GetCart)
			cart.DELETE("", h.ClearCart)
			cart.POST("/items", h.AddCartItem)
			cart.PUT("/items", h.UpdateCartItem)
			cart.DELETE("/items", h.RemoveCartItem)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", h.GetWishlist)
			wishlist.DELETE("", h.ClearWishlist)
			wishlist.GET("/:id", h.InWishlist)
			wishlist.POST("/:id", h.AddToWishlist)
			wishlist.DELETE("/:id", h.RemoveFromWishlist)
			wishlist.POST("/:id/move-to-cart", h.MoveToCart)
		}

		checkout := api.Group("/checkout")
		{
			checkout.POST("/validate", h.ValidateCustomer)
			checkout.GET("/quote", h.Quote)
			checkout.POST("/orders", h.PlaceOrder)
		}

		payment := api.Group("/payment/session")
		{
			payment.POST("", h.StartPayment)
			payment.GET("", h.PaymentStatus)
			payment.POST("/complete", h.CompletePayment)
			payment.DELETE("", h.CancelPayment)
		}

		api.GET("/orders/:id", h.GetOrder)
	}

	return r
}
