package gateway

import (
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
	"github.com/gin-gonic/gin"
)

type wishlistView struct {
	Items []domain.Entry `json:"items"`
	Count int            `json:"count"`
}

func toWishlistView(w domain.Wishlist) wishlistView {
	items := append([]domain.Entry{}, w.Entries...)
	return wishlistView{Items: items, Count: w.Len()}
}

func (h *Handler) GetWishlist(c *gin.Context) {
	w, err := h.svc.Wishlist.List(c.Request.Context(), shopperID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toWishlistView(w))
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	w, err := h.svc.Wishlist.AddProduct(c.Request.Context(), shopperID(c), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toWishlistView(w))
}

func (h *Handler) InWishlist(c *gin.Context) {
	has, err := h.svc.Wishlist.Has(c.Request.Context(), shopperID(c), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, gin.H{"inWishlist": has})
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	w, err := h.svc.Wishlist.Remove(c.Request.Context(), shopperID(c), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toWishlistView(w))
}

func (h *Handler) MoveToCart(c *gin.Context) {
	w, err := h.svc.Wishlist.MoveToCart(c.Request.Context(), shopperID(c), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toWishlistView(w))
}

func (h *Handler) ClearWishlist(c *gin.Context) {
	if err := h.svc.Wishlist.Clear(c.Request.Context(), shopperID(c)); err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toWishlistView(domain.Wishlist{}))
}
