package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/pdv-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/pdv-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/pdv-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/pdv-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/pdv-backend/internal/repository/minio"
	"github.com/DRSN-tech/pdv-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/pdv-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/pdv-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/pdv-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/pdv-backend/internal/usecase"
	"github.com/DRSN-tech/pdv-backend/pkg/clients"
	"github.com/DRSN-tech/pdv-backend/pkg/closer"
	"github.com/DRSN-tech/pdv-backend/pkg/e"
	"github.com/DRSN-tech/pdv-backend/pkg/logger"
	"github.com/DRSN-tech/pdv-backend/pkg/postgres"
	"github.com/DRSN-tech/pdv-backend/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// Run собирает зависимости приложения и держит его до сигнала завершения.
// Ресурсы регистрируются в closer и закрываются в обратном порядке.
func Run(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser(0)

	// Контекст жизни приложения для фоновых задач (outbox worker, очистка MinIO)
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("PostgreSQL pool closed")
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	orderItemRepo := pgdb.NewOrderItemRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	reportRepo := pgdb.NewReportRepo(db.Pool)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, appCtx)
	cl.Add(func(ctx context.Context) error {
		if err := imagesInfra.WaitForCleanup(ctx); err != nil {
			log.Warnf("MinIO cleanup error: %v", err)
			return nil
		}
		log.Infof("MinIO cleanup completed")
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	outboxWorker.Start(appCtx)
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		log.Infof("Outbox worker stopped")
		return nil
	})

	txManager := tr.NewManager(db.Pool)

	productUC := usecase.NewProductUC(
		productRepo,
		categoryRepo,
		txManager,
		imagesInfra,
		cacheRepo,
		log,
	)
	cartUC := usecase.NewCartUC(productUC, log)
	orderUC := usecase.NewOrderUC(
		orderRepo,
		orderItemRepo,
		outboxRepo,
		cartUC,
		txManager,
		cacheRepo,
		log,
	)
	reportUC := usecase.NewReportUC(reportRepo, cacheRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(cartUC, orderUC, productUC, reportUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		log.Errorf(err, "HTTP server shutdown error")
	} else {
		log.Infof("HTTP server stopped")
	}

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("Resource shutdown finished with errors: %v", err)
	}

	log.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
