package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingOrder    = errors.New("no pending order to pay")
	ErrNoSession       = errors.New("no payment session")
	ErrSessionExpired  = errors.New("payment session expired")
	ErrInvalidState    = errors.New("payment session is not awaiting payment")
	ErrPaymentDeclined = errors.New("payment declined")
)

// Service runs one payment session per shopper:
// pending -> processing -> completed|failed.
type Service struct {
	orders   PendingOrders
	sessions SessionRepo
	ledger   Ledger
	notifier Notifier
	cart     CartClearer
	qr       QRRenderer
	cfg      Config

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	rand  Random
	log   *slog.Logger

	mu sync.Mutex
}

func NewService(orders PendingOrders, sessions SessionRepo, ledger Ledger, notifier Notifier, cart CartClearer, qr QRRenderer, cfg Config, opts ...Option) *Service {
	s := &Service{
		orders:   orders,
		sessions: sessions,
		ledger:   ledger,
		notifier: notifier,
		cart:     cart,
		qr:       qr,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		sleep:    sleepContext,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = defaultRandom()
	}
	return s
}

func (s *Service) Mode() domain.Mode { return s.cfg.Mode }

// Start opens a fresh session for the shopper's pending order. New order and
// transaction ids are written back to the pending order. When the payee is
// invalid the session is still returned, without a code, together with a
// *domain.PayloadError so the caller can offer manual payment.
func (s *Service) Start(ctx context.Context, shopperID string) (domain.Session, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Session{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, err := s.sessions.Get(ctx, shopperID); err == nil && s.settling(cur) {
		return domain.Session{}, ErrInvalidState
	} else if err != nil && !errors.Is(err, ErrNoSession) {
		return domain.Session{}, err
	}

	order, err := s.orders.Get(ctx, shopperID)
	if errors.Is(err, checkoutdomain.ErrNoPendingOrder) {
		return domain.Session{}, ErrMissingOrder
	}
	if err != nil {
		return domain.Session{}, err
	}

	now := s.now()
	order.OrderID = domain.NewOrderID(now, s.rand)
	order.TransactionID = domain.NewTransactionID(now, s.rand)
	if err := s.orders.Save(ctx, shopperID, order); err != nil {
		return domain.Session{}, fmt.Errorf("update pending order: %w", err)
	}

	sess := domain.Session{
		ID:            uuid.NewString(),
		ShopperID:     shopperID,
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		Amount:        order.Total,
		Currency:      domain.Currency,
		PayeeID:       s.cfg.PayeeID,
		PayeeName:     s.cfg.PayeeName,
		Mode:          s.cfg.Mode,
		Status:        domain.StatusPending,
		History:       []domain.Status{domain.StatusPending},
		StartedAt:     now,
		Timeout:       s.cfg.Timeout,
	}
	sess.Remaining = domain.Remaining(now, now, s.cfg.Timeout)

	uri, payloadErr := domain.BuildPaymentURI(domain.Payload{
		PayeeID:       s.cfg.PayeeID,
		PayeeName:     s.cfg.PayeeName,
		Amount:        order.Total,
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		MerchantCode:  s.cfg.MerchantCode,
	})
	if payloadErr != nil {
		sess.PayloadError = payloadErr.Error()
		s.log.Error("payment payload rejected",
			slog.String("order_id", order.OrderID),
			slog.Any("err", payloadErr),
		)
	} else {
		sess.PaymentURI = uri
		code, err := s.qr.Render(ctx, uri)
		if err != nil {
			s.log.Warn("qr render failed",
				slog.String("order_id", order.OrderID),
				slog.Any("err", err),
			)
		}
		sess.QRCode = code
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Info("payment session started",
		slog.String("order_id", sess.OrderID),
		slog.String("transaction_id", sess.TransactionID),
		slog.Int64("amount", sess.Amount),
		slog.String("mode", string(sess.Mode)),
	)
	return sess, payloadErr
}

// Status returns the session with the countdown applied; an expired pending
// session is failed and saved as such.
func (s *Service) Status(ctx context.Context, shopperID string) (domain.Session, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Session{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, shopperID)
}

// Complete is the shopper's "I have completed payment". It blocks for the
// settlement delay; cancelling ctx does not abort a settlement once started.
func (s *Service) Complete(ctx context.Context, shopperID string) (domain.Confirmation, error) {
	if strings.TrimSpace(shopperID) == "" {
		return domain.Confirmation{}, ErrInvalidInput
	}

	sess, order, err := s.beginProcessing(ctx, shopperID)
	if err != nil {
		return domain.Confirmation{}, err
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.sleep(ctx, s.cfg.SettlementDelay); err != nil {
		return domain.Confirmation{}, err
	}

	if s.cfg.Mode == domain.ModeAuto && s.rand.Float64() < s.cfg.FailureRate {
		return domain.Confirmation{}, s.decline(ctx, sess)
	}
	return s.settle(ctx, sess, order)
}

// Cancel abandons the shopper's session. The pending order is kept so a new
// session can be started for it.
func (s *Service) Cancel(ctx context.Context, shopperID string) error {
	if strings.TrimSpace(shopperID) == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, shopperID)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	if s.settling(sess) {
		return ErrInvalidState
	}
	return s.sessions.Delete(ctx, shopperID)
}

func (s *Service) beginProcessing(ctx context.Context, shopperID string) (domain.Session, checkoutdomain.PendingOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(ctx, shopperID)
	if err != nil {
		return domain.Session{}, checkoutdomain.PendingOrder{}, err
	}
	switch {
	case sess.Status == domain.StatusPending:
	case sess.Status == domain.StatusProcessing && !s.settling(sess):
		s.log.Warn("resuming abandoned settlement", slog.String("order_id", sess.OrderID))
	case sess.Status == domain.StatusFailed:
		if sess.FailureReason == domain.FailureExpired {
			return domain.Session{}, checkoutdomain.PendingOrder{}, ErrSessionExpired
		}
		return domain.Session{}, checkoutdomain.PendingOrder{}, ErrInvalidState
	default:
		return domain.Session{}, checkoutdomain.PendingOrder{}, ErrInvalidState
	}

	order, err := s.orders.Get(ctx, shopperID)
	if errors.Is(err, checkoutdomain.ErrNoPendingOrder) {
		return domain.Session{}, checkoutdomain.PendingOrder{}, ErrMissingOrder
	}
	if err != nil {
		return domain.Session{}, checkoutdomain.PendingOrder{}, err
	}
	if order.OrderID != sess.OrderID {
		return domain.Session{}, checkoutdomain.PendingOrder{}, fmt.Errorf("%w: pending order changed since the session started", ErrInvalidState)
	}

	sess.Transition(domain.StatusProcessing)
	sess.ProcessingAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, checkoutdomain.PendingOrder{}, err
	}
	return sess, order, nil
}

// settling reports whether sess is held by a Complete that is still within
// its lease. A processing session past the lease was abandoned mid-settlement
// and may be reopened.
func (s *Service) settling(sess domain.Session) bool {
	if sess.Status != domain.StatusProcessing {
		return false
	}
	lease := s.cfg.SettlementDelay + processingGrace
	return sess.ProcessingAt.IsZero() || s.now().Before(sess.ProcessingAt.Add(lease))
}

// release returns a processing session to pending after a failed settlement
// step so the shopper can retry or cancel.
func (s *Service) release(ctx context.Context, sess domain.Session, cause error) error {
	sess.Transition(domain.StatusPending)
	sess.ProcessingAt = time.Time{}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.log.Error("release payment session",
			slog.String("order_id", sess.OrderID),
			slog.Any("err", err),
		)
	}
	s.log.Warn("settlement rolled back",
		slog.String("order_id", sess.OrderID),
		slog.Any("err", cause),
	)
	return cause
}

func (s *Service) settle(ctx context.Context, sess domain.Session, order checkoutdomain.PendingOrder) (domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.Record(ctx, sess.ShopperID, order, sess.PayeeID); err != nil {
		s.log.Error("ledger record failed",
			slog.String("order_id", order.OrderID),
			slog.Any("err", err),
		)
	}

	// A PlaceOrder during the settlement wait replaces the pending order;
	// the replacement and the cart behind it belong to the next payment.
	cur, err := s.orders.Get(ctx, sess.ShopperID)
	switch {
	case err == nil && cur.OrderID == order.OrderID:
		if err := s.cart.ClearCart(ctx, sess.ShopperID); err != nil {
			return domain.Confirmation{}, s.release(ctx, sess, fmt.Errorf("clear cart: %w", err))
		}
		if err := s.orders.Delete(ctx, sess.ShopperID); err != nil {
			return domain.Confirmation{}, s.release(ctx, sess, fmt.Errorf("delete pending order: %w", err))
		}
	case err == nil, errors.Is(err, checkoutdomain.ErrNoPendingOrder):
		s.log.Warn("pending order replaced during settlement",
			slog.String("order_id", order.OrderID),
		)
	default:
		return domain.Confirmation{}, s.release(ctx, sess, fmt.Errorf("reload pending order: %w", err))
	}

	emailSent, smsSent := s.notifier.OrderConfirmed(ctx, order)

	conf := domain.Confirmation{
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		Amount:        order.Total,
		RedirectURL:   domain.RedirectURL(order.OrderID, order.TransactionID),
		EmailSent:     emailSent,
		SMSSent:       smsSent,
	}
	sess.Transition(domain.StatusCompleted)
	sess.Confirmation = &conf
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Confirmation{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Info("payment completed",
		slog.String("order_id", conf.OrderID),
		slog.String("transaction_id", conf.TransactionID),
		slog.Int64("amount", conf.Amount),
	)
	return conf, nil
}

func (s *Service) decline(ctx context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	declined := sess
	declined.Transition(domain.StatusFailed)
	declined.FailureReason = domain.FailureDeclined
	if err := s.sessions.Save(ctx, declined); err != nil {
		return s.release(ctx, sess, fmt.Errorf("save session: %w", err))
	}

	s.log.Warn("payment declined", slog.String("order_id", sess.OrderID))
	return ErrPaymentDeclined
}

func (s *Service) load(ctx context.Context, shopperID string) (domain.Session, error) {
	sess, err := s.sessions.Get(ctx, shopperID)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Tick(s.now()) {
		if err := s.sessions.Save(ctx, sess); err != nil {
			return domain.Session{}, err
		}
		s.log.Info("payment session expired", slog.String("order_id", sess.OrderID))
	}
	return sess, nil
}
