package domain

import "fmt"

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Recipient is the part of a settled order a confirmation needs.
type Recipient struct {
	OrderID string
	Email   string
	Phone   string
}

type Message struct {
	Channel       Channel `json:"channel"`
	To            string  `json:"to"`
	OrderID       string  `json:"orderId"`
	TransactionID string  `json:"transactionId"`
	Body          string  `json:"body"`
}

// Result reports each channel independently.
type Result struct {
	EmailSent bool `json:"emailSent"`
	SMSSent   bool `json:"smsSent"`
}

func ConfirmationText(orderID, transactionID string) string {
	return fmt.Sprintf("Thanks for choosing ZYNO😍. Your order was successfully placed and further details will be informed. Order ID: %s, Transaction ID: %s", orderID, transactionID)
}
