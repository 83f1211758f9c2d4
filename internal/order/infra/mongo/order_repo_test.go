package mongo

import (
	"testing"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDocumentRoundTripThroughBSON(t *testing.T) {
	want := domain.Order{
		ID:             "ZYNO1700000000000ABCDEFGHI",
		TransactionID:  "TXN1700000000000JKLMNOPQR",
		ShopperID:      "s1",
		Status:         domain.StatusCompleted,
		Currency:       "INR",
		Customer:       domain.Customer{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Address: "Mumbai"},
		PaymentMethod:  "UPI",
		PayeeID:        "shrinisha2005@okabi",
		SubTotalAmount: 1198,
		TotalAmount:    1198,
		OrderItems: []domain.OrderItem{
			{ProductID: "2", Name: "T-Rex Roar T-Shirt", Size: "M", UnitAmount: 599, Quantity: 2, LineTotalAmount: 1198},
		},
		CreatedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}

	raw, err := bson.Marshal(toDocument(want))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, want.ID, fields["_id"])
	assert.Equal(t, want.TransactionID, fields["transaction_id"])

	var doc orderDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := fromDocument(doc)
	assert.Equal(t, want.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
	got.CreatedAt = want.CreatedAt
	assert.Equal(t, want, got)
}
