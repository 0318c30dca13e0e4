package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/freshcart-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/freshcart-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/freshcart-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/freshcart-backend/internal/repository/memory"
	minioRepo "github.com/DRSN-tech/freshcart-backend/internal/repository/minio"
	redisRepo "github.com/DRSN-tech/freshcart-backend/internal/repository/redis"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/clients"
	"github.com/DRSN-tech/freshcart-backend/pkg/closer"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// Run собирает зависимости, загружает состояние витрины и держит HTTP-сервер
// до сигнала завершения.
func Run(cfg *config.Config, logger logger.Logger) error {
	cl := closer.NewCloser(2 * time.Second)

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer initCancel()

	storeRepo, err := initStoreRepo(initCtx, cfg, logger, cl)
	if err != nil {
		logger.Errorf(err, "failed to initialize store repository")
		return err
	}

	imageRepo, err := initImageRepo(initCtx, cfg, logger)
	if err != nil {
		logger.Errorf(err, "failed to initialize image repository")
		return err
	}

	producer := initProducer(cfg, logger, cl)

	storeUC := usecase.NewStoreUC(storeRepo, imageRepo, producer, logger)
	if err := storeUC.Init(initCtx); err != nil {
		logger.Errorf(err, "failed to load store state")
		return err
	}

	// Журнальный подписчик: каждый завершённый снимок попадает в лог.
	snapshots, unsubscribe := storeUC.Subscribe()
	go func() {
		for snap := range snapshots {
			logger.Infof("state changed: %d products, %d cart items, %d orders",
				len(snap.Products), len(snap.Cart), len(snap.Orders))
		}
	}()
	cl.Add(func(ctx context.Context) error {
		unsubscribe()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(storeUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		logger.Infof("Application shutdown complete")
	}

	return appErr
}

// initStoreRepo выбирает бэкенд хранилища витрины по конфигурации.
func initStoreRepo(ctx context.Context, cfg *config.Config, logger logger.Logger, cl *closer.Closer) (usecase.StoreRepository, error) {
	if cfg.Store.Backend == config.StoreBackendMemory {
		logger.Infof("using in-memory store backend, state will not survive restarts")
		return memory.NewStoreRepo(), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	if err := redisClient.Ping(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewStoreRepo(redisClient, cfg.Store, logger), nil
}

// initImageRepo возвращает nil-репозиторий, если MinIO не сконфигурирован:
// загрузка файлов изображений в этом случае отключена, внешние URL работают.
func initImageRepo(ctx context.Context, cfg *config.Config, logger logger.Logger) (usecase.ImageRepository, error) {
	if cfg.Minio.MinioRootUser == "" {
		logger.Infof("MinIO is not configured, image upload disabled")
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return minioRepo.NewImageRepo(minioClient, cfg.Minio), nil
}

// initProducer возвращает nil, если брокеры не заданы: события отключены.
func initProducer(cfg *config.Config, logger logger.Logger, cl *closer.Closer) usecase.EventProducer {
	if cfg.Kafka == nil {
		logger.Infof("Kafka brokers are not configured, state events disabled")
		return nil
	}

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Warnf("failed to initialize kafka producer, state events disabled: %v", err)
		return nil
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
	}

	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	return producer
}
