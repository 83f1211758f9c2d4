package gateway

import (
	orderapp "github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	"github.com/gin-gonic/gin"
)

// GetOrder shows a recorded order to the shopper who placed it. Orders of
// other shoppers are reported as missing.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.svc.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if order.ShopperID != shopperID(c) {
		fail(c, h.log, orderapp.ErrNotFound)
		return
	}
	ok(c, order)
}
