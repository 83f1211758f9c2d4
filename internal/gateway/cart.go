package gateway

import (
	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
	"github.com/gin-gonic/gin"
)

type cartView struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  int64             `json:"subtotal"`
}

func toCartView(cart domain.Cart) cartView {
	items := cart.Snapshot()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartView{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type lineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (r lineRequest) key() domain.LineKey {
	return domain.LineKey{ProductID: r.ProductID, Size: r.Size, Color: r.Color}
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.svc.Cart.GetCart(c.Request.Context(), shopperID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toCartView(cart))
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId", "productId is required")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.svc.Cart.AddProduct(c.Request.Context(), shopperID(c), req.ProductID, quantity, req.Size, req.Color)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toCartView(cart))
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId", "productId is required")
		return
	}
	cart, err := h.svc.Cart.SetItemQuantity(c.Request.Context(), shopperID(c), req.key(), req.Quantity)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toCartView(cart))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId", "productId is required")
		return
	}
	cart, err := h.svc.Cart.RemoveItem(c.Request.Context(), shopperID(c), req.key())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toCartView(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.svc.Cart.ClearCart(c.Request.Context(), shopperID(c)); err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toCartView(domain.Cart{}))
}
