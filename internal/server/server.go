// Package server exposes the engine over HTTP for the rendering layer.
//
// The routes are a thin projection of engine operations: every handler
// invokes exactly one operation and reports its typed result. Rejected
// transitions map to 409, validation rejections to 422, store failures
// to 500.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pmdelgado/kiosco/internal/engine"
	"github.com/pmdelgado/kiosco/internal/middleware"
)

// Server wires the engine into a gin router.
type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	metrics *metrics
}

// New builds the HTTP server around a constructed engine.
func New(eng *engine.Engine) *Server {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	s := &Server{router: router, engine: eng, metrics: newMetrics()}
	s.syncDayGauge()
	s.registerRoutes()
	return s
}

// Router returns the underlying handler for http.Server and tests.
func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/state", s.getState)

		v1.GET("/products", s.listProducts)
		v1.POST("/products", s.createProduct)
		v1.PUT("/products/:id", s.updateProduct)
		v1.DELETE("/products/:id", s.deleteProduct)

		v1.GET("/categories", s.listCategories)
		v1.POST("/categories", s.createCategory)
		v1.DELETE("/categories/:key", s.deleteCategory)

		v1.GET("/cart", s.getCart)
		v1.POST("/cart/items", s.addCartItem)
		v1.DELETE("/cart/items/:productId", s.removeCartItem)
		v1.DELETE("/cart", s.clearCart)

		v1.POST("/day/start", s.startDay)
		v1.POST("/checkout", s.goToCheckout)
		v1.POST("/checkout/back", s.backToOrder)
		v1.POST("/checkout/confirm", s.confirmPaid)
		v1.POST("/day/end", s.endDay)
		v1.POST("/session/close", s.closeApp)

		v1.GET("/summary", s.getSummary)
		v1.GET("/summary/orders/:id", s.getOrderBreakdown)

		v1.GET("/settings/payment-qr", s.getPaymentQR)
		v1.PUT("/settings/payment-qr", s.setPaymentQR)
	}
}

func (s *Server) syncDayGauge() {
	if s.engine.Session().Open() {
		s.metrics.dayOpen.Set(1)
	} else {
		s.metrics.dayOpen.Set(0)
	}
}
