package domain

import "time"

const StatusCompleted = "COMPLETED"

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Order struct {
	ID             string      `json:"id"`
	TransactionID  string      `json:"transactionId"`
	ShopperID      string      `json:"-"`
	Status         string      `json:"status"`
	Currency       string      `json:"currency"`
	Customer       Customer    `json:"customer"`
	PaymentMethod  string      `json:"paymentMethod"`
	PayeeID        string      `json:"payeeId"`
	SubTotalAmount int64       `json:"subtotal"`
	ShippingAmount int64       `json:"shipping"`
	TaxAmount      int64       `json:"tax"`
	TotalAmount    int64       `json:"total"`
	OrderItems     []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	Size            string `json:"size,omitempty"`
	Color           string `json:"color,omitempty"`
	UnitAmount      int64  `json:"unitAmount"`
	Quantity        int32  `json:"quantity"`
	LineTotalAmount int64  `json:"lineTotal"`
}

type CreateOrderRequest struct {
	OrderID        string
	TransactionID  string
	ShopperID      string
	Currency       string
	Customer       Customer
	PaymentMethod  string
	PayeeID        string
	ShippingAmount int64
	TaxAmount      int64
	Items          []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	Size       string
	Color      string
	UnitAmount int64
	Quantity   int32
}

type OrderResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	TotalAmount   int64     `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}
