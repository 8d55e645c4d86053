package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/routes"
	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/logger"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/repositories/kv"
	"github.com/yoockh/jobboard/internal/repositories/memory"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
	"github.com/yoockh/jobboard/internal/repositories/postgres"
	"github.com/yoockh/jobboard/internal/seed"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/storage"
	"github.com/yoockh/jobboard/internal/utils"
	"github.com/yoockh/jobboard/internal/workers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	sessionRepo, err := openSessions(ctx, cfg, log)
	if err != nil {
		log.Fatalf("session store init error: %v", err)
	}
	if purger, ok := sessionRepo.(workers.ExpiredPurger); ok {
		sweeper := &workers.SessionSweeper{Sessions: purger, Logger: log}
		if err := sweeper.Start(ctx); err != nil {
			log.Fatalf("session sweeper error: %v", err)
		}
	}

	if cfg.SeedData {
		switch err := seed.Load(ctx, store); {
		case err == nil:
			log.Info("demo data seeded")
		case errors.Is(err, utils.ErrConflict):
			log.Info("demo data already present")
		default:
			log.Fatalf("seed error: %v", err)
		}
	}

	var (
		uploader storage.Uploader
		objects  *storage.MemoryUploader
	)
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
		log.WithField("bucket", cfg.GCSBucket).Info("GCS uploader ready")
	} else {
		objects = storage.NewMemoryUploader("")
		uploader = objects
	}

	latency := services.NewLatency(cfg.SimulateLatency)
	sessions := services.NewSessionService(sessionRepo, cfg.JWTSecret, cfg.SessionTTL)

	authSvc := services.NewAuthService(store.Users, sessions, latency, log, services.AuthOptions{
		CheckPasswords: cfg.AuthCheckPassword,
	})
	jobSvc := services.NewJobService(store.Jobs, latency, log)
	appSvc := services.NewApplicationService(store.Jobs, store.Applications, latency, log)
	employerSvc := services.NewEmployerService(store.Jobs, store.Applications, latency)
	resumeSvc := services.NewResumeService(store.Resumes, uploader, log)

	gin.SetMode(gin.ReleaseMode)
	r := routes.NewRouter(log, routes.Deps{
		Sessions:     sessions,
		Auth:         handlers.NewAuthHandler(authSvc),
		Jobs:         handlers.NewJobHandler(jobSvc),
		Applications: handlers.NewApplicationHandler(appSvc),
		Employer:     handlers.NewEmployerHandler(employerSvc),
		Resumes:      handlers.NewResumeHandler(resumeSvc, objects),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

func openStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*repositories.Store, error) {
	if cfg.StoreBackend != config.StorePostgres {
		log.Info("using in-memory store")
		return memory.NewStore(), nil
	}

	if err := config.InitPostgres(cfg); err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, config.PostgresDB); err != nil {
		return nil, err
	}
	log.Info("PostgreSQL connected")
	return postgres.NewStore(config.PostgresDB), nil
}

func openSessions(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (repositories.SessionRepository, error) {
	switch cfg.SessionBackend {
	case config.SessionRedis:
		if err := config.InitRedis(ctx, cfg); err != nil {
			return nil, err
		}
		log.Info("Redis connected")
		return kv.NewSessionRepo(cache.NewRedisCache(config.RedisClient, "jobboard:")), nil

	case config.SessionMongo:
		if err := config.InitMongo(ctx, cfg); err != nil {
			return nil, err
		}
		if err := config.EnsureMongoIndexes(ctx, cfg); err != nil {
			return nil, err
		}
		log.Info("MongoDB connected")
		return mongorepo.NewSessionRepo(config.MongoDatabase(cfg)), nil

	case config.SessionKVMemory:
		log.Info("using in-process key-value session cache")
		return kv.NewSessionRepo(cache.NewMemoryCache()), nil

	default:
		return memory.NewSessionRepo(), nil
	}
}
