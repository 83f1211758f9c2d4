package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIsIdempotent(t *testing.T) {
	var w Wishlist
	assert.True(t, w.Add(Entry{ID: "1", Name: "Velociraptor Hunt Poster", Price: 299}))
	assert.False(t, w.Add(Entry{ID: "1", Name: "renamed", Price: 1}))

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Has("1"))

	got, _ := w.Get("1")
	assert.Equal(t, int64(299), got.Price, "first snapshot wins")
}

func TestInsertionOrderAndRemove(t *testing.T) {
	var w Wishlist
	for _, id := range []string{"3", "1", "2"} {
		w.Add(Entry{ID: id})
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids(w))

	assert.True(t, w.Remove("1"))
	assert.False(t, w.Remove("1"))
	assert.Equal(t, []string{"3", "2"}, ids(w))
	assert.False(t, w.Has("1"))

	w.Clear()
	assert.Zero(t, w.Len())
}

func ids(w Wishlist) []string {
	out := make([]string, 0, len(w.Entries))
	for _, e := range w.Entries {
		out = append(out, e.ID)
	}
	return out
}
