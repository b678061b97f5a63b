package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmdelgado/kiosco/internal/engine"
	"github.com/pmdelgado/kiosco/internal/models"
	"github.com/pmdelgado/kiosco/internal/summary"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":     s.engine.State(),
		"total":     s.engine.Total(),
		"cartItems": len(s.engine.Cart()),
	})
}

// Products

func (s *Server) listProducts(c *gin.Context) {
	if category, ok := c.GetQuery("category"); ok {
		s.engine.SetCategoryFilter(category)
	}
	if q, ok := c.GetQuery("q"); ok {
		s.engine.SetQuery(q)
	}
	c.JSON(http.StatusOK, gin.H{
		"products":   s.engine.FilteredProducts(),
		"categories": s.engine.CategoryNames(),
	})
}

type productReq struct {
	Name      string              `json:"name"`
	Price     models.Money        `json:"price"`
	Category  string              `json:"category"`
	Image     models.ProductImage `json:"image"`
	KeepImage bool                `json:"keepImage"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Name == "" || req.Price < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name required and price must not be negative"})
		return
	}
	p, err := s.engine.AddProduct(c.Request.Context(), req.Name, req.Price, req.Category, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Name == "" || req.Price < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name required and price must not be negative"})
		return
	}
	p, err := s.engine.UpdateProduct(c.Request.Context(), c.Param("id"), req.Name, req.Price, req.Category, req.Image, req.KeepImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.engine.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": s.engine.Categories(),
		"names":      s.engine.CategoryNames(),
	})
}

type categoryReq struct {
	Name string `json:"name"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	result, err := s.engine.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) deleteCategory(c *gin.Context) {
	result, err := s.engine.DeleteCategory(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cart

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": s.engine.Cart(),
		"total": s.engine.Total(),
	})
}

type cartItemReq struct {
	ProductID string `json:"productId"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	// Unknown ids are a deliberate no-op; the response carries the
	// resulting cart either way.
	s.engine.AddToCart(req.ProductID)
	s.getCart(c)
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.engine.RemoveFromCart(c.Param("productId"))
	s.getCart(c)
}

func (s *Server) clearCart(c *gin.Context) {
	s.engine.ClearCart()
	c.Status(http.StatusNoContent)
}

// Lifecycle

func (s *Server) startDay(c *gin.Context) {
	t, err := s.engine.StartDay(c.Request.Context())
	s.respondTransition(c, "start_day", t, err)
}

func (s *Server) goToCheckout(c *gin.Context) {
	s.respondTransition(c, "go_to_checkout", s.engine.GoToCheckout(), nil)
}

func (s *Server) backToOrder(c *gin.Context) {
	s.respondTransition(c, "back_to_order", s.engine.BackToOrder(), nil)
}

func (s *Server) confirmPaid(c *gin.Context) {
	result, err := s.engine.ConfirmPaid(c.Request.Context())
	s.metrics.transition("confirm_paid", result.Applied)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Applied {
		c.JSON(http.StatusConflict, result)
		return
	}
	s.metrics.ordersConfirmed.Inc()
	s.metrics.orderCents.Add(float64(result.Order.Total))
	c.JSON(http.StatusOK, result)
}

func (s *Server) endDay(c *gin.Context) {
	t, err := s.engine.EndDay(c.Request.Context())
	s.respondTransition(c, "end_day", t, err)
}

func (s *Server) closeApp(c *gin.Context) {
	t, err := s.engine.CloseApp(c.Request.Context())
	s.respondTransition(c, "close_app", t, err)
}

func (s *Server) respondTransition(c *gin.Context, op string, t engine.Transition, err error) {
	s.metrics.transition(op, t.Applied)
	s.syncDayGauge()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !t.Applied {
		c.JSON(http.StatusConflict, t)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Summary

func (s *Server) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, summary.Day(s.engine.Session()))
}

func (s *Server) getOrderBreakdown(c *gin.Context) {
	id := c.Param("id")
	for _, o := range s.engine.Session().Orders {
		if o.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"order":  o,
				"groups": summary.GroupByCategory(o),
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
}

// Settings

func (s *Server) getPaymentQR(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"value": s.engine.PaymentQR()})
}

type settingReq struct {
	Value string `json:"value"`
}

func (s *Server) setPaymentQR(c *gin.Context) {
	var req settingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.engine.SetPaymentQR(c.Request.Context(), req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": req.Value})
}
