package adapter

import (
	"context"
	"fmt"

	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	orderapp "github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	orderdomain "github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
)

type OrderLedger struct {
	svc *orderapp.Service
}

func NewOrderLedger(svc *orderapp.Service) *OrderLedger {
	return &OrderLedger{svc: svc}
}

func (l *OrderLedger) Record(ctx context.Context, shopperID string, order checkoutdomain.PendingOrder, payeeID string) error {
	c := order.Customer
	req := orderdomain.CreateOrderRequest{
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		ShopperID:     shopperID,
		Currency:      checkoutdomain.Currency,
		Customer: orderdomain.Customer{
			Name:    c.FullName(),
			Email:   c.Email,
			Phone:   c.Phone,
			Address: fmt.Sprintf("%s, %s, %s - %s", c.Address, c.City, c.State, c.Pincode),
		},
		PaymentMethod:  order.PaymentMethod,
		PayeeID:        payeeID,
		ShippingAmount: order.Shipping,
		TaxAmount:      order.Tax,
		Items:          make([]orderdomain.OrderItemRequest, 0, len(order.Items)),
	}
	for _, it := range order.Items {
		req.Items = append(req.Items, orderdomain.OrderItemRequest{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Size:       it.Size,
			Color:      it.Color,
			UnitAmount: it.Price,
			Quantity:   int32(it.Quantity),
		})
	}

	_, err := l.svc.RecordOrder(ctx, req)
	return err
}
