package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/order/domain"
	"github.com/HamsavardhanS/Zyno-Sample/pkg/logger"
	sqlitedb "github.com/HamsavardhanS/Zyno-Sample/pkg/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T) *OrderRepo {
	t.Helper()
	db, err := sqlitedb.Open(sqlitedb.Config{Path: filepath.Join(t.TempDir(), "orders.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, logger.Discard()))
	require.NoError(t, Migrate(ctx, db, logger.Discard()), "migrations must be re-runnable")
	return NewOrderRepo(db)
}

func sampleOrder() domain.Order {
	return domain.Order{
		ID:            "ZYNO1700000000000ABCDEFGHI",
		TransactionID: "TXN1700000000000JKLMNOPQR",
		ShopperID:     "s1",
		Status:        domain.StatusCompleted,
		Currency:      "INR",
		Customer: domain.Customer{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 MG Road, Mumbai, Maharashtra - 400001",
		},
		PaymentMethod:  "UPI",
		PayeeID:        "shrinisha2005@okabi",
		SubTotalAmount: 1497,
		TotalAmount:    1497,
		OrderItems: []domain.OrderItem{
			{ProductID: "2", Name: "T-Rex Roar T-Shirt", Size: "M", Color: "Black", UnitAmount: 599, Quantity: 2, LineTotalAmount: 1198},
			{ProductID: "1", Name: "Velociraptor Hunt Poster", UnitAmount: 299, Quantity: 1, LineTotalAmount: 299},
		},
		CreatedAt: time.Date(2026, 3, 4, 5, 6, 7, 8000, time.UTC),
	}
}

func TestCreateAndGetOrder(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	want := sampleOrder()
	_, err := repo.CreateOrderTx(ctx, want)
	require.NoError(t, err)

	got, err := repo.GetOrder(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLedgerIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	_, err := repo.CreateOrderTx(ctx, sampleOrder())
	require.NoError(t, err)

	_, err = repo.CreateOrderTx(ctx, sampleOrder())
	assert.ErrorIs(t, err, app.ErrAlreadyRecorded)
}

func TestLineTotalMismatchRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	bad := sampleOrder()
	bad.OrderItems[1].LineTotalAmount = 1
	_, err := repo.CreateOrderTx(ctx, bad)
	require.Error(t, err)

	_, err = repo.GetOrder(ctx, bad.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestGetMissingOrder(t *testing.T) {
	_, err := openRepo(t).GetOrder(context.Background(), "ZYNO0")
	assert.ErrorIs(t, err, app.ErrNotFound)
}
