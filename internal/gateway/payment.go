package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
	"github.com/gin-gonic/gin"
)

type sessionView struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"orderId"`
	TransactionID    string               `json:"transactionId"`
	Amount           int64                `json:"amount"`
	Currency         string               `json:"currency"`
	PayeeID          string               `json:"payeeId"`
	PayeeName        string               `json:"payeeName"`
	PaymentURI       string               `json:"paymentUri,omitempty"`
	QRCode           string               `json:"qrCode,omitempty"`
	PayloadError     string               `json:"payloadError,omitempty"`
	Mode             domain.Mode          `json:"mode"`
	Status           domain.Status        `json:"status"`
	History          []domain.Status      `json:"history"`
	StartedAt        time.Time            `json:"startedAt"`
	ExpiresAt        time.Time            `json:"expiresAt"`
	RemainingSeconds int                  `json:"remainingSeconds"`
	FailureReason    string               `json:"failureReason,omitempty"`
	Confirmation     *domain.Confirmation `json:"confirmation,omitempty"`
}

func toSessionView(s domain.Session) sessionView {
	return sessionView{
		ID:               s.ID,
		OrderID:          s.OrderID,
		TransactionID:    s.TransactionID,
		Amount:           s.Amount,
		Currency:         s.Currency,
		PayeeID:          s.PayeeID,
		PayeeName:        s.PayeeName,
		PaymentURI:       s.PaymentURI,
		QRCode:           s.QRCode,
		PayloadError:     s.PayloadError,
		Mode:             s.Mode,
		Status:           s.Status,
		History:          s.History,
		StartedAt:        s.StartedAt,
		ExpiresAt:        s.StartedAt.Add(s.Timeout),
		RemainingSeconds: s.Remaining,
		FailureReason:    s.FailureReason,
		Confirmation:     s.Confirmation,
	}
}

// StartPayment opens a session for the pending order. A payee that cannot be
// encoded still yields a session, without a code, so the page can fall back
// to manual payment instructions.
func (h *Handler) StartPayment(c *gin.Context) {
	sess, err := h.svc.Payment.Start(c.Request.Context(), shopperID(c))
	var perr *domain.PayloadError
	if errors.As(err, &perr) && sess.ID != "" {
		c.JSON(http.StatusCreated, Response{
			Success: true,
			Data:    toSessionView(sess),
			Message: perr.Error(),
		})
		return
	}
	if err != nil {
		fail(c, h.log, err)
		return
	}
	created(c, toSessionView(sess))
}

func (h *Handler) PaymentStatus(c *gin.Context) {
	sess, err := h.svc.Payment.Status(c.Request.Context(), shopperID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, toSessionView(sess))
}

func (h *Handler) CompletePayment(c *gin.Context) {
	conf, err := h.svc.Payment.Complete(c.Request.Context(), shopperID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, conf)
}

func (h *Handler) CancelPayment(c *gin.Context) {
	if err := h.svc.Payment.Cancel(c.Request.Context(), shopperID(c)); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
