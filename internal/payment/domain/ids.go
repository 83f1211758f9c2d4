package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	orderPrefix       = "ZYNO"
	transactionPrefix = "TXN"
	suffixLen         = 9
	base36            = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Rand is satisfied by *rand.Rand from math/rand/v2.
type Rand interface {
	IntN(n int) int
}

// NewOrderID returns ZYNO<epoch-ms><9 base36 chars>. Uniqueness is not checked.
func NewOrderID(now time.Time, r Rand) string {
	return newID(orderPrefix, now, r)
}

// NewTransactionID returns TXN<epoch-ms><9 base36 chars>.
func NewTransactionID(now time.Time, r Rand) string {
	return newID(transactionPrefix, now, r)
}

func newID(prefix string, now time.Time, r Rand) string {
	var b strings.Builder
	b.Grow(len(prefix) + 13 + suffixLen)
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	for range suffixLen {
		b.WriteByte(base36[r.IntN(len(base36))])
	}
	return b.String()
}
