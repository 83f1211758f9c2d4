package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("order not found")
	ErrAlreadyRecorded = errors.New("order already recorded")
)

type Service struct {
	repo OrderRepo
	now  func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RecordOrder appends a settled order to the ledger.
func (s *Service) RecordOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.TransactionID) == "" {
		return domain.OrderResponse{}, fmt.Errorf("%w: order and transaction ids are required", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}
	if req.ShippingAmount < 0 {
		return domain.OrderResponse{}, fmt.Errorf("%w: shipping amount cannot be negative, got %d", ErrInvalidInput, req.ShippingAmount)
	}
	if req.TaxAmount < 0 {
		return domain.OrderResponse{}, fmt.Errorf("%w: tax amount cannot be negative, got %d", ErrInvalidInput, req.TaxAmount)
	}

	orderItem := make([]domain.OrderItem, 0, len(req.Items))
	var subTotalAmount int64 = 0

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.UnitAmount < 0 {
			return domain.OrderResponse{}, fmt.Errorf("%w: item %d: unit amount cannot be negative, got %d", ErrInvalidInput, i, item.UnitAmount)
		}

		orderItem = append(orderItem, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Size:            item.Size,
			Color:           item.Color,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: item.UnitAmount * int64(item.Quantity),
		})

		subTotalAmount += item.UnitAmount * int64(item.Quantity)
	}

	order := domain.Order{
		ID:             req.OrderID,
		TransactionID:  req.TransactionID,
		ShopperID:      req.ShopperID,
		Status:         domain.StatusCompleted,
		Currency:       req.Currency,
		Customer:       req.Customer,
		PaymentMethod:  req.PaymentMethod,
		PayeeID:        req.PayeeID,
		ShippingAmount: req.ShippingAmount,
		TaxAmount:      req.TaxAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount + req.ShippingAmount + req.TaxAmount,
		OrderItems:     orderItem,
		CreatedAt:      s.now().UTC(),
	}

	createdOrder, err := s.repo.CreateOrderTx(ctx, order)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:            createdOrder.ID,
		TransactionID: createdOrder.TransactionID,
		Status:        createdOrder.Status,
		TotalAmount:   createdOrder.TotalAmount,
		CreatedAt:     createdOrder.CreatedAt,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.GetOrder(ctx, id)
}
