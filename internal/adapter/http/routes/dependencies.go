package routes

import (
	"context"

	"marketplace_escrow/internal/adapter/persistence/memory"
	"marketplace_escrow/internal/adapter/persistence/mongodb"
	"marketplace_escrow/internal/adapter/persistence/repository"
	"marketplace_escrow/internal/infrastructure/auth"
	"marketplace_escrow/internal/infrastructure/config"
	"marketplace_escrow/internal/infrastructure/database"
	"marketplace_escrow/internal/infrastructure/idempotency"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/infrastructure/payments"
	"marketplace_escrow/internal/usecase"
	"marketplace_escrow/internal/usecase/interfaces"
)

type persistence struct {
	needs    interfaces.INeedRepository
	offers   interfaces.IOfferRepository
	orders   interfaces.IOrderRepository
	disputes interfaces.IDisputeRepository
	uow      interfaces.IUnitOfWork
}

// BuildDependencies connects the configured backends and assembles the use
// cases. The returned cleanup closes every client that was opened.
func BuildDependencies(ctx context.Context, cfg config.Config, log *logger.Logger) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store, err := openPersistence(ctx, cfg, log)
	if err != nil {
		return Dependencies{}, cleanup, err
	}

	var locks interfaces.IIdempotencyStore = idempotency.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			cleanup()
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		locks = idempotency.NewRedisStore(rdb)
		log.Info("[bootstrap] idempotency backed by redis", "addr", cfg.RedisAddr)
	} else {
		log.Warn("[bootstrap] REDIS_ADDR not set; idempotency locks are process-local")
	}

	var activityLog interfaces.IActivityLog
	if cfg.MongoURI != "" {
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			cleanup()
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		activityLog = mongodb.NewActivityLogRepository(client, cfg.MongoDatabase)
		log.Info("[bootstrap] activity log backed by mongodb", "database", cfg.MongoDatabase)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken, log)
	if err != nil {
		log.Warn("[bootstrap] Mercado Pago gateway not configured; orders cannot be paid", "error", err)
	} else {
		gateway = mpGateway
	}

	deps := Dependencies{
		Needs:          usecase.NewNeedUseCase(store.needs, store.offers, store.uow, activityLog, log),
		Offers:         usecase.NewOfferUseCase(store.needs, store.offers, store.uow, activityLog, log),
		Orders:         usecase.NewOrderUseCase(store.needs, store.offers, store.orders, store.uow, gateway, locks, activityLog, log),
		Disputes:       usecase.NewDisputeUseCase(store.needs, store.orders, store.disputes, store.uow, activityLog, log),
		Tokens:         auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer),
		Log:            log,
		RequestTimeout: cfg.RequestTimeout,
	}
	return deps, cleanup, nil
}

func openPersistence(ctx context.Context, cfg config.Config, log *logger.Logger) (persistence, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("[bootstrap] using in-memory storage; data is lost on restart")
		s := memory.NewStore()
		return persistence{needs: s.Needs(), offers: s.Offers(), orders: s.Orders(), disputes: s.Disputes(), uow: s}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return persistence{}, err
	}
	tables := repository.TableNamesFromEnv()
	if cfg.DynamoDBCreateTables {
		if err := repository.EnsureTables(ctx, ddb, tables); err != nil {
			return persistence{}, err
		}
		log.Info("[bootstrap] dynamodb tables ready", "needs", tables.Needs, "offers", tables.Offers, "orders", tables.Orders, "disputes", tables.Disputes)
	}
	return persistence{
		needs:    repository.NewNeedDynamoRepository(ddb, tables),
		offers:   repository.NewOfferDynamoRepository(ddb, tables),
		orders:   repository.NewOrderDynamoRepository(ddb, tables),
		disputes: repository.NewDisputeDynamoRepository(ddb, tables),
		uow:      repository.NewDynamoUnitOfWork(ddb, tables),
	}, nil
}
