package domain

import (
	"net/url"
	"time"
)

const (
	FailureExpired  = "payment session expired"
	FailureDeclined = "payment declined"
)

// Confirmation is what the shopper sees once a payment settles.
type Confirmation struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	RedirectURL   string `json:"redirectUrl"`
	EmailSent     bool   `json:"emailSent"`
	SMSSent       bool   `json:"smsSent"`
}

func RedirectURL(orderID, transactionID string) string {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("transactionId", transactionID)
	return "/order-success?" + q.Encode()
}

type Session struct {
	ID            string        `json:"id"`
	ShopperID     string        `json:"shopperId"`
	OrderID       string        `json:"orderId"`
	TransactionID string        `json:"transactionId"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	PayeeID       string        `json:"payeeId"`
	PayeeName     string        `json:"payeeName"`
	PaymentURI    string        `json:"paymentUri,omitempty"`
	QRCode        string        `json:"qrCode,omitempty"`
	PayloadError  string        `json:"payloadError,omitempty"`
	Mode          Mode          `json:"mode"`
	Status        Status        `json:"status"`
	History       []Status      `json:"history"`
	StartedAt     time.Time     `json:"startedAt"`
	ProcessingAt  time.Time     `json:"processingAt,omitzero"`
	Timeout       time.Duration `json:"timeout"`
	Remaining     int           `json:"remainingSeconds"`
	FailureReason string        `json:"failureReason,omitempty"`
	Confirmation  *Confirmation `json:"confirmation,omitempty"`
}

// Transition moves the session to next and records it. A repeated status is
// not recorded twice.
func (s *Session) Transition(next Status) {
	if s.Status == next {
		return
	}
	s.Status = next
	s.History = append(s.History, next)
}

// Tick applies the clock at now and reports whether the status changed.
func (s *Session) Tick(now time.Time) bool {
	if s.Status != StatusPending {
		return false
	}
	s.Remaining = Remaining(s.StartedAt, now, s.Timeout)
	next := Advance(s.Status, now.Sub(s.StartedAt), s.Timeout)
	if next == s.Status {
		return false
	}
	s.Transition(next)
	if next == StatusFailed {
		s.FailureReason = FailureExpired
		s.Remaining = 0
	}
	return true
}
