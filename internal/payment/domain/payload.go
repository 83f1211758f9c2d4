package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	Currency        = "INR"
	upiMode         = "02"
	upiPurpose      = "00"
	defaultMerchant = "5411"
)

var ErrInvalidPayee = errors.New("invalid payee identifier")

var payeePattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)

// PayloadError means no payable request could be built; no code may be
// rendered for it.
type PayloadError struct {
	PayeeID string
	Err     error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("cannot build payment request for payee %q: %v", e.PayeeID, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

type Payload struct {
	PayeeID       string
	PayeeName     string
	Amount        int64
	OrderID       string
	TransactionID string
	MerchantCode  string
}

func ValidPayeeID(id string) bool {
	return payeePattern.MatchString(id)
}

// BuildPaymentURI renders the upi://pay deep link. Parameters keep a fixed
// order and are form-encoded.
func BuildPaymentURI(p Payload) (string, error) {
	if !ValidPayeeID(p.PayeeID) {
		return "", &PayloadError{PayeeID: p.PayeeID, Err: ErrInvalidPayee}
	}
	if p.Amount < 0 {
		return "", &PayloadError{PayeeID: p.PayeeID, Err: fmt.Errorf("negative amount %d", p.Amount)}
	}
	mc := p.MerchantCode
	if mc == "" {
		mc = defaultMerchant
	}

	params := [][2]string{
		{"pa", p.PayeeID},
		{"pn", p.PayeeName},
		{"am", strconv.FormatInt(p.Amount, 10)},
		{"cu", Currency},
		{"tn", "Order " + p.OrderID},
		{"tr", p.TransactionID},
		{"mc", mc},
		{"mode", upiMode},
		{"purpose", upiPurpose},
	}

	var b strings.Builder
	b.WriteString("upi://pay?")
	for i, kv := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String(), nil
}
