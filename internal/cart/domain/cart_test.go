package domain

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shirt(size string) CartItem {
	return CartItem{ProductID: "2", Name: "T-Rex Roar T-Shirt", Price: 599, Size: size, Color: "Black"}
}

func TestAddMergesSameVariant(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 2))
	require.NoError(t, c.Add(shirt("M"), 3))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, int64(5*599), c.Subtotal())
}

func TestAddDifferentSizeCreatesNewLine(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 1))
	require.NoError(t, c.Add(shirt("L"), 1))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	var c Cart
	assert.ErrorIs(t, c.Add(shirt("M"), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(shirt("M"), -2), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestSetQuantity(t *testing.T) {
	for _, q := range []int{0, -1} {
		var c Cart
		require.NoError(t, c.Add(shirt("M"), 4))
		ok, err := c.SetQuantity(shirt("M").Key(), q)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, c.IsEmpty(), "quantity %d should remove the line", q)
	}

	var c Cart
	require.NoError(t, c.Add(shirt("M"), 4))
	ok, err := c.SetQuantity(shirt("M").Key(), 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Items[0].Quantity, "set, not add")

	ok, err = c.SetQuantity(shirt("S").Key(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, c.Items, 1)
}

func TestQuantityIsBounded(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 1))

	assert.ErrorIs(t, c.Add(shirt("M"), math.MaxInt), ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(shirt("L"), MaxQuantity+1), ErrInvalidQuantity)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Len(t, c.Items, 1)

	require.NoError(t, c.Add(shirt("M"), MaxQuantity-1))
	assert.Equal(t, MaxQuantity, c.Items[0].Quantity)
	assert.ErrorIs(t, c.Add(shirt("M"), 1), ErrInvalidQuantity)
	assert.Equal(t, MaxQuantity, c.Items[0].Quantity)

	_, err := c.SetQuantity(shirt("M").Key(), math.MaxInt/100)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, MaxQuantity, c.Items[0].Quantity)
	assert.Equal(t, int64(MaxQuantity*599), c.Subtotal())
}

func TestRemoveMissingIsNoop(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 1))
	assert.False(t, c.Remove(shirt("XL").Key()))
	assert.True(t, c.Remove(shirt("M").Key()))
	assert.True(t, c.IsEmpty())
}

func TestClear(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 1))
	require.NoError(t, c.Add(shirt("L"), 1))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Subtotal())
}

func TestSubtotalTracksEveryMutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []string{"S", "M", "L"}
	prices := map[string]int64{"S": 100, "M": 250, "L": 999}

	var c Cart
	for step := 0; step < 500; step++ {
		size := sizes[rng.IntN(len(sizes))]
		item := CartItem{ProductID: "p", Price: prices[size], Size: size}

		switch rng.IntN(3) {
		case 0:
			_ = c.Add(item, rng.IntN(4)+1)
		case 1:
			c.Remove(item.Key())
		case 2:
			_, _ = c.SetQuantity(item.Key(), rng.IntN(5)-1)
		}

		var want int64
		for _, it := range c.Items {
			require.GreaterOrEqual(t, it.Quantity, 1)
			want += it.Price * int64(it.Quantity)
		}
		require.Equal(t, want, c.Subtotal(), "step %d", step)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(shirt("M"), 1))
	snap := c.Snapshot()
	snap[0].Quantity = 99
	assert.Equal(t, 1, c.Items[0].Quantity)
}
