package gateway

import (
	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

type validateResponse struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

func (h *Handler) ValidateCustomer(c *gin.Context) {
	var info domain.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		badRequest(c, "", "malformed customer details")
		return
	}
	fe := h.svc.Checkout.Validate(info)
	if fe == nil {
		fe = domain.FieldErrors{}
	}
	ok(c, validateResponse{Valid: fe.Valid(), FieldErrors: fe})
}

func (h *Handler) Quote(c *gin.Context) {
	q, err := h.svc.Checkout.Quote(c.Request.Context(), shopperID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, q)
}

// PlaceOrder stores the pending order the payment page picks up.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var info domain.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		badRequest(c, "", "malformed customer details")
		return
	}
	order, err := h.svc.Checkout.PlaceOrder(c.Request.Context(), shopperID(c), info)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	created(c, order)
}
