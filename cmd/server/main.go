package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/atharsaifi001-eng/NEAT-RE/api/handler"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/config"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/monitor"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/outbox"
	redisInfra "github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/redis"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/integration"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/middleware"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/router"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/services"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/services/lifecycle"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/logger"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
	redisRepo "github.com/atharsaifi001-eng/NEAT-RE/repository/redis"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
	authUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/auth"
	chatUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/chat"
	commissionUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/commission"
	kycUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/kyc"
	leadUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/lead"
	listingUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/listing"
	visitUC "github.com/atharsaifi001-eng/NEAT-RE/usecase/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store := memory.NewStore(idgen.New(cfg.Mock.IDStrategy))
	if cfg.Mock.Seed {
		memory.Seed(store, time.Now())
		zapLogger.Info("mock store seeded", zap.Int("listings", store.Stats().Listings))
	}

	redisClient, err := redisInfra.NewClient(appCtx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	var sessionRepo repository.SessionRepository
	if redisClient != nil {
		manager.RegisterCloser("redis", redisClient)
		sessionRepo = redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)
	} else {
		zapLogger.Info("REDIS_URL not set, sessions kept in memory")
		sessionRepo = memory.NewSessionRepository(store, cfg.JWT.SessionTTL)
	}

	targets := integration.NewStub(zapLogger)
	integrations := services.Integrations{OTP: targets, KYC: targets, Payout: targets}

	var (
		box      *outbox.Store
		delivery usecase.IntegrationOutbox
	)
	if cfg.Outbox.Enabled {
		box, err = outbox.Open(cfg.Outbox.Path)
		if err != nil {
			zapLogger.Fatal("failed to open outbox store", zap.Error(err))
		}
		manager.RegisterCloser("outbox", box)

		processor := services.NewOutboxProcessor(box, integrations, zapLogger, services.ProcessorConfig{
			Interval:   cfg.Outbox.SyncInterval,
			BatchSize:  cfg.Outbox.BatchSize,
			MaxRetries: cfg.Outbox.MaxRetry,
		})
		processor.Start()
		manager.Register("outbox_processor", func(ctx context.Context) error {
			processor.Stop(ctx)
			return nil
		})
		delivery = services.NewOutboxBridge(processor)
	} else {
		delivery = services.NewDirectDelivery(integrations)
	}

	mon := monitor.New(redisClient, box, store, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	rt := usecase.Runtime{
		LatencyScale: cfg.Mock.LatencyScale,
		NotFound:     usecase.ParsePolicy(cfg.Mock.NotFoundPolicy),
	}

	userRepo := memory.NewUserRepository(store)
	listingRepo := memory.NewListingRepository(store)
	leadRepo := memory.NewLeadRepository(store)

	authUseCase := authUC.New(userRepo, sessionRepo, delivery, rt, authUC.Config{
		OTPCode:    cfg.Mock.OTPCode,
		JWTSecret:  cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: cfg.JWT.SessionTTL,
	}, zapLogger)
	listingUseCase := listingUC.New(listingRepo, leadRepo, rt, zapLogger)
	chatUseCase := chatUC.New(memory.NewChatRepository(store), rt, zapLogger)
	kycUseCase := kycUC.New(memory.NewDocumentRepository(store), delivery, rt, zapLogger)
	commissionUseCase := commissionUC.New(memory.NewCommissionRepository(store), delivery, rt, zapLogger)
	visitUseCase := visitUC.New(memory.NewVisitRepository(store), listingRepo, rt, zapLogger)
	leadUseCase := leadUC.New(leadRepo, listingRepo, rt, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Listing:    apiHandler.NewListingHandler(listingUseCase, ctxAdapter, zapLogger),
		Chat:       apiHandler.NewChatHandler(chatUseCase, ctxAdapter, zapLogger),
		KYC:        apiHandler.NewKYCHandler(kycUseCase, ctxAdapter, zapLogger),
		Commission: apiHandler.NewCommissionHandler(commissionUseCase, ctxAdapter, zapLogger),
		Visit:      apiHandler.NewVisitHandler(visitUseCase, ctxAdapter, zapLogger),
		Lead:       apiHandler.NewLeadHandler(leadUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, authUseCase, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:            r.Handler,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxConnsPerIP:      cfg.HTTP.MaxConn,
		Name:               cfg.AppName,
		MaxRequestBodySize: 1 << 20,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment),
			zap.Float64("latency_scale", cfg.Mock.LatencyScale),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
