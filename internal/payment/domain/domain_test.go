package domain

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierFormats(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	now := time.UnixMilli(1735689600123)

	orderRe := regexp.MustCompile(`^ZYNO\d+[A-Z0-9]{9}$`)
	txnRe := regexp.MustCompile(`^TXN\d+[A-Z0-9]{9}$`)

	for range 200 {
		oid := NewOrderID(now, rng)
		tid := NewTransactionID(now, rng)
		require.Regexp(t, orderRe, oid)
		require.Regexp(t, txnRe, tid)
		require.True(t, strings.HasPrefix(oid, "ZYNO1735689600123"))
	}
}

func TestPayeeValidation(t *testing.T) {
	valid := []string{"shrinisha2005@okabi", "a.b-c_d@ybl", "ab@cd"}
	invalid := []string{"bad id", "bad id@okabi", "a@okabi", "name@ok1", "name@o", "@okabi", "name", "name@" + strings.Repeat("x", 65)}

	for _, id := range valid {
		assert.True(t, ValidPayeeID(id), id)
	}
	for _, id := range invalid {
		assert.False(t, ValidPayeeID(id), id)
	}
}

func TestBuildPaymentURI(t *testing.T) {
	got, err := BuildPaymentURI(Payload{
		PayeeID:       "shrinisha2005@okabi",
		PayeeName:     "ZYNO Store",
		Amount:        1198,
		OrderID:       "ZYNO1ABCDEFGHI",
		TransactionID: "TXN1JKLMNOPQR",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"upi://pay?pa=shrinisha2005%40okabi&pn=ZYNO+Store&am=1198&cu=INR&tn=Order+ZYNO1ABCDEFGHI&tr=TXN1JKLMNOPQR&mc=5411&mode=02&purpose=00",
		got)
}

func TestBuildPaymentURIRejectsBadPayee(t *testing.T) {
	got, err := BuildPaymentURI(Payload{PayeeID: "bad id", Amount: 10})
	assert.Empty(t, got)

	var pe *PayloadError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, ErrInvalidPayee)
	assert.Contains(t, err.Error(), `"bad id"`)
}

func TestAdvance(t *testing.T) {
	timeout := 600 * time.Second
	assert.Equal(t, StatusPending, Advance(StatusPending, 599*time.Second, timeout))
	assert.Equal(t, StatusFailed, Advance(StatusPending, timeout, timeout))
	assert.Equal(t, StatusFailed, Advance(StatusPending, time.Hour, timeout))
	assert.Equal(t, StatusProcessing, Advance(StatusProcessing, time.Hour, timeout))
	assert.Equal(t, StatusCompleted, Advance(StatusCompleted, time.Hour, timeout))
}

func TestRemainingCountsDownBySecond(t *testing.T) {
	start := time.Unix(1000, 0)
	timeout := 600 * time.Second

	assert.Equal(t, 600, Remaining(start, start, timeout))
	assert.Equal(t, 600, Remaining(start, start.Add(999*time.Millisecond), timeout))
	for s := 1; s <= 600; s++ {
		require.Equal(t, 600-s, Remaining(start, start.Add(time.Duration(s)*time.Second), timeout))
	}
	assert.Equal(t, 0, Remaining(start, start.Add(time.Hour), timeout))
	assert.Equal(t, 600, Remaining(start, start.Add(-time.Second), timeout))
}

func TestSessionTick(t *testing.T) {
	start := time.Unix(1000, 0)
	s := Session{Status: StatusPending, History: []Status{StatusPending}, StartedAt: start, Timeout: 10 * time.Second}

	assert.False(t, s.Tick(start.Add(3*time.Second)))
	assert.Equal(t, 7, s.Remaining)

	assert.True(t, s.Tick(start.Add(10*time.Second)))
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, FailureExpired, s.FailureReason)
	assert.Equal(t, []Status{StatusPending, StatusFailed}, s.History)

	assert.False(t, s.Tick(start.Add(time.Hour)))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeManual, m)

	m, err = ParseMode("auto")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, m)

	_, err = ParseMode("random")
	assert.Error(t, err)
}

func TestRedirectURL(t *testing.T) {
	assert.Equal(t, "/order-success?orderId=ZYNO1&transactionId=TXN1", RedirectURL("ZYNO1", "TXN1"))
}
