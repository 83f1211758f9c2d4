package adapter

import (
	"context"

	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	notificationapp "github.com/HamsavardhanS/Zyno-Sample/internal/notification/app"
	notificationdomain "github.com/HamsavardhanS/Zyno-Sample/internal/notification/domain"
)

type ConfirmationNotifier struct {
	svc *notificationapp.Service
}

func NewConfirmationNotifier(svc *notificationapp.Service) *ConfirmationNotifier {
	return &ConfirmationNotifier{svc: svc}
}

func (n *ConfirmationNotifier) OrderConfirmed(ctx context.Context, order checkoutdomain.PendingOrder) (bool, bool) {
	res := n.svc.SendOrderConfirmation(ctx, notificationdomain.Recipient{
		OrderID: order.OrderID,
		Email:   order.Customer.Email,
		Phone:   order.Customer.Phone,
	}, order.TransactionID)
	return res.EmailSent, res.SMSSent
}
