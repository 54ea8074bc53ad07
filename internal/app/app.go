package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mcsclean/bookingd/internal/booking"
	"github.com/mcsclean/bookingd/internal/config"
	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/httpserver"
	"github.com/mcsclean/bookingd/internal/httpserver/deps"
	"github.com/mcsclean/bookingd/internal/logger"
	"github.com/mcsclean/bookingd/internal/notify"
	"github.com/mcsclean/bookingd/internal/redis"
	catalogsrc "github.com/mcsclean/bookingd/internal/sources/catalog"
	"github.com/mcsclean/bookingd/internal/store"
	filestore "github.com/mcsclean/bookingd/internal/store/file"
	redisstore "github.com/mcsclean/bookingd/internal/store/redis"
	"github.com/mcsclean/bookingd/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	dispatcher  *notify.Dispatcher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Business-local calendar for slot generation
	loc := time.Local
	if cfg.Timezone != "" {
		resolved, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			loggerClient.Errorf("Invalid BOOKINGD_TIMEZONE %q: %v", cfg.Timezone, err)
			os.Exit(1)
		}
		loc = resolved
	}

	// Booking store - fail fast if the backend is unavailable
	var bookingStore store.Store
	var redisClient *goredis.Client
	switch cfg.StoreBackend {
	case config.BackendRedis:
		loggerClient.Infof("Using redis booking store at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		bookingStore = redisstore.NewStore(client)
	default:
		loggerClient.Infof("Using file booking store at %s", cfg.DataFile)
		st, err := filestore.New(cfg.DataFile)
		if err != nil {
			loggerClient.Errorf("Failed to initialize booking store: %v", err)
			os.Exit(1)
		}
		bookingStore = st
	}

	// Service catalog: YAML file when configured, built-in defaults otherwise
	services := catalogsrc.Defaults()
	if cfg.CatalogFile != "" {
		parsed, err := catalogsrc.NewLoader(cfg.CatalogFile).Load()
		if err != nil {
			loggerClient.Errorf("Failed to load catalog: %v", err)
			os.Exit(1)
		}
		services, err = catalogsrc.NewMapper().MapServices(parsed)
		if err != nil {
			loggerClient.Errorf("Failed to map catalog: %v", err)
			os.Exit(1)
		}
	}
	catalog := domain.NewCatalog(services)
	loggerClient.Info("service catalog loaded",
		logger.Int("services", catalog.Len()))

	// SMS confirmations (optional)
	var dispatcher *notify.Dispatcher
	if cfg.SMSWebhookURL != "" {
		sender := notify.NewWebhookSender(cfg.SMSWebhookURL, cfg.SMSToken)
		dispatcher = notify.NewDispatcher(sender, loggerClient, loc, cfg.SMSQueueSize)
		loggerClient.Info("sms confirmations enabled",
			logger.String("provider", sender.ProviderID()))
	} else {
		loggerClient.Info("sms confirmations disabled (no webhook configured)")
	}

	bookingSvc := booking.New(booking.Options{
		Store:      bookingStore,
		Catalog:    catalog,
		Logger:     loggerClient,
		Hours:      domain.Hours{Open: cfg.OpenHour, Close: cfg.CloseHour},
		Capacity:   cfg.CapacityPerSlot,
		Location:   loc,
		Dispatcher: dispatcher,
	})

	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		Booking:          bookingSvc,
		Catalog:          catalog,
		StaticDir:        cfg.StaticDir,
		TrustProxy:       cfg.TrustProxy,
		RateBurst:        cfg.RateBurst,
		RateRefillPerMin: cfg.RateRefillPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		dispatcher:  dispatcher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting bookingd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("bookingd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the confirmation dispatcher (if SMS is configured)
	if a.dispatcher != nil {
		if err := a.dispatcher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start sms dispatcher: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ bookingd stopped cleanly")
	return nil
}
