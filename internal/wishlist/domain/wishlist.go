package domain

import "time"

// Entry snapshots the product when it was saved. Re-adding the same product
// keeps the first snapshot.
type Entry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice"`
	Image         string `json:"image"`
	Category      string `json:"category"`
}

type Wishlist struct {
	ShopperID string    `json:"shopperId"`
	Entries   []Entry   `json:"entries"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Add appends e unless an entry with the same id exists. It reports whether
// the wishlist changed.
func (w *Wishlist) Add(e Entry) bool {
	if w.Has(e.ID) {
		return false
	}
	w.Entries = append(w.Entries, e)
	return true
}

func (w *Wishlist) Remove(id string) bool {
	for i, e := range w.Entries {
		if e.ID == id {
			w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
			if len(w.Entries) == 0 {
				w.Entries = nil
			}
			return true
		}
	}
	return false
}

func (w Wishlist) Has(id string) bool {
	_, ok := w.Get(id)
	return ok
}

func (w Wishlist) Get(id string) (Entry, bool) {
	for _, e := range w.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func (w *Wishlist) Clear() {
	w.Entries = nil
}

func (w Wishlist) Len() int {
	return len(w.Entries)
}
