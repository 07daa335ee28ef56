// Package runtime wires the application graph for the CLI commands: config,
// logging, database, cache, repositories and use cases.
package runtime

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUC "github.com/recero-inc/recero/internal/application/billing/usecases"
	subscriptionUC "github.com/recero-inc/recero/internal/application/subscription/usecases"
	"github.com/recero-inc/recero/internal/domain/subscription/pricing"
	"github.com/recero-inc/recero/internal/infrastructure/cache"
	"github.com/recero-inc/recero/internal/infrastructure/config"
	"github.com/recero-inc/recero/internal/infrastructure/crypto"
	"github.com/recero-inc/recero/internal/infrastructure/database"
	"github.com/recero-inc/recero/internal/infrastructure/payment"
	"github.com/recero-inc/recero/internal/infrastructure/repository"
	"github.com/recero-inc/recero/internal/shared/biztime"
	"github.com/recero-inc/recero/internal/shared/db"
	"github.com/recero-inc/recero/internal/shared/logger"
)

// Runtime holds the wired application graph.
type Runtime struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Interface

	Register *subscriptionUC.RegisterStoreServicesUseCase
	Settle   *billingUC.SettlePendingBillingUseCase
}

// New loads configuration and wires the full graph.
func New(env string) (*Runtime, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	gormDB := database.Get()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	key, err := base64.StdEncoding.DecodeString(cfg.Crypto.RefundAccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode refund account key: %w", err)
	}
	codec, err := crypto.NewRefundAccountCodec(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize refund account codec: %w", err)
	}

	txManager := db.NewTransactionManager(gormDB)
	policy := pricing.PolicyFromConfig(cfg.Pricing)

	catalogRepo := repository.NewCachedCatalogRepository(
		repository.NewServiceCatalogRepository(gormDB),
		cache.NewCatalogCache(redisClient, time.Duration(cfg.Redis.CatalogTTLSecs)*time.Second),
		log.Named("catalog.cache"),
	)
	batchRepo := repository.NewSubscriptionBatchRepository(gormDB)
	recordRepo := repository.NewBillingRecordRepository(gormDB, codec)
	accountRepo := repository.NewPointAccountRepository(gormDB)

	gateway := payment.NewGatewayClient(cfg.Payment, log.Named("payment.gateway"))

	dispatch := billingUC.NewDispatchBillingUseCase(
		recordRepo, accountRepo, gateway, txManager,
		policy.ServiceTermMonths, log.Named("billing.dispatch"),
	)

	return &Runtime{
		Config: cfg,
		DB:     gormDB,
		Redis:  redisClient,
		Logger: log,
		Register: subscriptionUC.NewRegisterStoreServicesUseCase(
			batchRepo, recordRepo, accountRepo, catalogRepo,
			dispatch, txManager, policy, log.Named("subscription.register"),
		),
		Settle: billingUC.NewSettlePendingBillingUseCase(
			recordRepo, dispatch, txManager, 0, log.Named("billing.settle"),
		),
	}, nil
}

// Close releases the runtime's connections.
func (r *Runtime) Close() {
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			r.Logger.Warnw("failed to close redis client", "error", err)
		}
	}
	if err := database.Close(); err != nil {
		r.Logger.Warnw("failed to close database", "error", err)
	}
}
