package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	cartadapter "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/adapter"
	cartkv "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/kv"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/infra/static"
	checkoutapp "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/app"
	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	checkoutadapter "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/infra/adapter"
	checkoutkv "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/infra/kv"
	"github.com/HamsavardhanS/Zyno-Sample/internal/gateway"
	notificationapp "github.com/HamsavardhanS/Zyno-Sample/internal/notification/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/notification/infra/logsender"
	"github.com/HamsavardhanS/Zyno-Sample/internal/notification/infra/sqssender"
	orderapp "github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	ordermongo "github.com/HamsavardhanS/Zyno-Sample/internal/order/infra/mongo"
	ordersqlite "github.com/HamsavardhanS/Zyno-Sample/internal/order/infra/sqlite"
	paymentapp "github.com/HamsavardhanS/Zyno-Sample/internal/payment/app"
	paymentdomain "github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
	paymentadapter "github.com/HamsavardhanS/Zyno-Sample/internal/payment/infra/adapter"
	paymentkv "github.com/HamsavardhanS/Zyno-Sample/internal/payment/infra/kv"
	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/infra/qr"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	wishlistapp "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
	wishlistadapter "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/infra/adapter"
	wishlistkv "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/infra/kv"
	"github.com/HamsavardhanS/Zyno-Sample/pkg/config"
	"github.com/HamsavardhanS/Zyno-Sample/pkg/mongo"
	"github.com/HamsavardhanS/Zyno-Sample/pkg/redis"
	"github.com/HamsavardhanS/Zyno-Sample/pkg/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
)

type storefront struct {
	router *gin.Engine
	probes []func(ctx context.Context) error
	closer []func(ctx context.Context) error
}

func (s *storefront) ready(ctx context.Context) error {
	for _, probe := range s.probes {
		if err := probe(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases backends in reverse order of opening.
func (s *storefront) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closer) - 1; i >= 0; i-- {
		errs = append(errs, s.closer[i](ctx))
	}
	return errors.Join(errs...)
}

func build(ctx context.Context, cfg config.Config, log *slog.Logger) (_ *storefront, err error) {
	sf := &storefront{}
	defer func() {
		if err != nil {
			_ = sf.Close(context.Background())
		}
	}()

	products, err := static.NewProductRepo()
	if err != nil {
		return nil, err
	}
	catalogSvc := catalogapp.NewService(products)

	store, err := sf.openScratch(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	// Cart
	cartSvc := cartapp.NewService(
		cartkv.NewCartRepo(store, cfg.ScratchTTL),
		cartadapter.NewCatalogServiceReader(catalogSvc),
	)

	// Wishlist
	wishlistSvc := wishlistapp.NewService(
		wishlistkv.NewWishlistRepo(store, cfg.ScratchTTL),
		wishlistadapter.NewCatalogServiceReader(catalogSvc),
		wishlistadapter.NewCartServiceWriter(cartSvc),
	)

	// Checkout
	pricing, err := pricingPolicy(cfg)
	if err != nil {
		return nil, err
	}
	pendingOrders := checkoutkv.NewPendingOrderRepo(store, cfg.ScratchTTL)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		pendingOrders,
		pricing,
		cfg.CheckoutMaxConcurrent,
	)

	// Ledger and notifications
	orderRepo, err := sf.openLedger(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	orderSvc := orderapp.NewService(orderRepo)

	sender, err := newSender(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	notifySvc := notificationapp.NewService(sender, log)

	// Payment
	mode, err := paymentdomain.ParseMode(cfg.PaymentMode)
	if err != nil {
		return nil, err
	}
	paymentSvc := paymentapp.NewService(
		pendingOrders,
		paymentkv.NewSessionRepo(store, cfg.ScratchTTL),
		paymentadapter.NewOrderLedger(orderSvc),
		paymentadapter.NewConfirmationNotifier(notifySvc),
		cartSvc,
		newQRRenderer(cfg),
		paymentapp.Config{
			PayeeID:         cfg.UPIPayeeID,
			PayeeName:       cfg.UPIPayeeName,
			MerchantCode:    cfg.UPIMerchantCode,
			Mode:            mode,
			FailureRate:     cfg.PaymentFailureRate,
			Timeout:         cfg.PaymentTimeout,
			SettlementDelay: cfg.SettlementDelay,
		},
		paymentapp.WithLogger(log),
	)

	sessionKey := []byte(cfg.SessionKey)
	if len(sessionKey) == 0 {
		log.Warn("SESSION_KEY not set, shopper cookies will not survive a restart")
		sessionKey = securecookie.GenerateRandomKey(32)
	}

	h := gateway.NewHandler(gateway.Services{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Checkout: checkoutSvc,
		Payment:  paymentSvc,
		Orders:   orderSvc,
	}, log)
	sf.router = gateway.NewRouter(h, gateway.Options{
		CORSOrigins: cfg.CORSOrigins,
		Sessions:    gateway.NewCookieStore(sessionKey, cfg.AppEnv == "production"),
		Ready:       sf.ready,
	})
	return sf, nil
}

func (sf *storefront) openScratch(ctx context.Context, cfg config.Config, log *slog.Logger) (scratch.Store, error) {
	switch strings.ToLower(cfg.ScratchBackend) {
	case "memory":
		log.Info("scratch store: memory")
		return scratch.NewMemory(), nil
	case "redis":
		client, err := redis.Open(ctx, redis.Config{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		sf.probes = append(sf.probes, func(ctx context.Context) error { return client.Ping(ctx).Err() })
		sf.closer = append(sf.closer, func(context.Context) error { return client.Close() })
		log.Info("scratch store: redis", slog.String("addr", cfg.RedisAddress))
		return scratch.NewRedis(client, "zyno:"), nil
	}
	return nil, fmt.Errorf("unknown SCRATCH_BACKEND %q", cfg.ScratchBackend)
}

func (sf *storefront) openLedger(ctx context.Context, cfg config.Config, log *slog.Logger) (orderapp.OrderRepo, error) {
	switch strings.ToLower(cfg.LedgerBackend) {
	case "sqlite":
		db, err := sqlite.Open(sqlite.Config{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		sf.probes = append(sf.probes, db.PingContext)
		sf.closer = append(sf.closer, func(context.Context) error { return db.Close() })
		if err := ordersqlite.Migrate(ctx, db, log); err != nil {
			return nil, err
		}
		log.Info("order ledger: sqlite", slog.String("path", cfg.SQLitePath))
		return ordersqlite.NewOrderRepo(db), nil
	case "mongo":
		client, db, err := mongo.Open(ctx, mongo.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase})
		if err != nil {
			return nil, err
		}
		sf.probes = append(sf.probes, func(ctx context.Context) error { return client.Ping(ctx, nil) })
		sf.closer = append(sf.closer, client.Disconnect)
		repo := ordermongo.NewOrderRepo(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		log.Info("order ledger: mongo", slog.String("database", cfg.MongoDatabase))
		return repo, nil
	}
	return nil, fmt.Errorf("unknown LEDGER_BACKEND %q", cfg.LedgerBackend)
}

func newSender(ctx context.Context, cfg config.Config, log *slog.Logger) (notificationapp.Sender, error) {
	switch strings.ToLower(cfg.NotifyBackend) {
	case "log":
		return logsender.New(log), nil
	case "sqs":
		if cfg.SQSQueueURL == "" {
			return nil, errors.New("NOTIFY_BACKEND=sqs needs SQS_QUEUE_URL")
		}
		sender, err := sqssender.NewFromEnv(ctx, cfg.AWSRegion, cfg.SQSQueueURL)
		if err != nil {
			return nil, err
		}
		log.Info("notifications: sqs", slog.String("queue", cfg.SQSQueueURL))
		return sender, nil
	}
	return nil, fmt.Errorf("unknown NOTIFY_BACKEND %q", cfg.NotifyBackend)
}

func newQRRenderer(cfg config.Config) paymentapp.QRRenderer {
	if strings.EqualFold(cfg.QRRenderer, "png") {
		return qr.NewPNGRenderer(256)
	}
	return qr.NewChartRenderer()
}

func pricingPolicy(cfg config.Config) (checkoutdomain.PricingPolicy, error) {
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return checkoutdomain.PricingPolicy{}, fmt.Errorf("TAX_RATE %q: %w", cfg.TaxRate, err)
	}
	if rate.IsNegative() || cfg.ShippingFee < 0 || cfg.FreeShippingThreshold < 0 {
		return checkoutdomain.PricingPolicy{}, errors.New("pricing values must not be negative")
	}
	return checkoutdomain.PricingPolicy{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFee:           cfg.ShippingFee,
		TaxRate:               rate,
	}, nil
}
