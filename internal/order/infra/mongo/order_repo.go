package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "orders"

type orderDocument struct {
	ID             string         `bson:"_id"`
	TransactionID  string         `bson:"transaction_id"`
	ShopperID      string         `bson:"shopper_id"`
	Status         string         `bson:"status"`
	Currency       string         `bson:"currency"`
	Customer       customerDoc    `bson:"customer"`
	PaymentMethod  string         `bson:"payment_method"`
	PayeeID        string         `bson:"payee_id"`
	SubTotalAmount int64          `bson:"subtotal_amount"`
	ShippingAmount int64          `bson:"shipping_amount"`
	TaxAmount      int64          `bson:"tax_amount"`
	TotalAmount    int64          `bson:"total_amount"`
	Items          []orderItemDoc `bson:"items"`
	CreatedAt      time.Time      `bson:"created_at"`
}

type customerDoc struct {
	Name    string `bson:"name"`
	Email   string `bson:"email"`
	Phone   string `bson:"phone"`
	Address string `bson:"address"`
}

type orderItemDoc struct {
	ProductID       string `bson:"product_id"`
	Name            string `bson:"name"`
	Size            string `bson:"size,omitempty"`
	Color           string `bson:"color,omitempty"`
	UnitAmount      int64  `bson:"unit_amount"`
	Quantity        int32  `bson:"quantity"`
	LineTotalAmount int64  `bson:"line_total_amount"`
}

// OrderRepo keeps one document per order, keyed by order id.
type OrderRepo struct {
	coll *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(collectionName)}
}

func (r *OrderRepo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_order_transaction_unique"),
		},
		{
			Keys:    bson.D{{Key: "shopper_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_order_shopper_created"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}
	return nil
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	for i, item := range order.OrderItems {
		if item.LineTotalAmount != item.UnitAmount*int64(item.Quantity) {
			return domain.Order{}, fmt.Errorf("item %d: line total mismatch", i)
		}
	}

	if _, err := r.coll.InsertOne(ctx, toDocument(order)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Order{}, fmt.Errorf("%s: %w", order.ID, app.ErrAlreadyRecorded)
		}
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var doc orderDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return fromDocument(doc), nil
}

func toDocument(o domain.Order) orderDocument {
	doc := orderDocument{
		ID:            o.ID,
		TransactionID: o.TransactionID,
		ShopperID:     o.ShopperID,
		Status:        o.Status,
		Currency:      o.Currency,
		Customer: customerDoc{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		PaymentMethod:  o.PaymentMethod,
		PayeeID:        o.PayeeID,
		SubTotalAmount: o.SubTotalAmount,
		ShippingAmount: o.ShippingAmount,
		TaxAmount:      o.TaxAmount,
		TotalAmount:    o.TotalAmount,
		Items:          make([]orderItemDoc, 0, len(o.OrderItems)),
		CreatedAt:      o.CreatedAt.UTC(),
	}
	for _, it := range o.OrderItems {
		doc.Items = append(doc.Items, orderItemDoc(it))
	}
	return doc
}

func fromDocument(doc orderDocument) domain.Order {
	o := domain.Order{
		ID:             doc.ID,
		TransactionID:  doc.TransactionID,
		ShopperID:      doc.ShopperID,
		Status:         doc.Status,
		Currency:       doc.Currency,
		Customer:       domain.Customer(doc.Customer),
		PaymentMethod:  doc.PaymentMethod,
		PayeeID:        doc.PayeeID,
		SubTotalAmount: doc.SubTotalAmount,
		ShippingAmount: doc.ShippingAmount,
		TaxAmount:      doc.TaxAmount,
		TotalAmount:    doc.TotalAmount,
		CreatedAt:      doc.CreatedAt,
	}
	for _, it := range doc.Items {
		o.OrderItems = append(o.OrderItems, domain.OrderItem(it))
	}
	return o
}
