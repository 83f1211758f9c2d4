package domain

import (
	"errors"
	"time"
)

const (
	Currency      = "INR"
	PaymentMethod = "UPI"
)

var ErrNoPendingOrder = errors.New("no pending order")

// LineItem is a cart line as it appears on a pending order.
type LineItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

func (l LineItem) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

type QuoteLine struct {
	LineItem
	LineTotal int64 `json:"lineTotal"`
}

type Quote struct {
	Lines    []QuoteLine `json:"lines"`
	Currency string      `json:"currency"`
	Totals
}

// PendingOrder is the validated checkout awaiting payment. OrderID and
// TransactionID stay empty until a payment session is started.
type PendingOrder struct {
	OrderID       string       `json:"orderId"`
	TransactionID string       `json:"transactionId,omitempty"`
	Date          time.Time    `json:"date"`
	Customer      CustomerInfo `json:"customer"`
	Items         []LineItem   `json:"items"`
	Subtotal      int64        `json:"subtotal"`
	Shipping      int64        `json:"shipping"`
	Tax           int64        `json:"tax,omitempty"`
	Total         int64        `json:"total"`
	PaymentMethod string       `json:"paymentMethod"`
}
