// Command walkthrough drives the client shell through the buyer flow
// against an in-process mock backend and logs every screen change.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/app"
	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/config"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/integration"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/services"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/logger"
	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
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
	zapLogger, err := logger.New(logger.Config{Level: cfg.Logger.Level, Encoding: "console"})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	store := memory.NewStore(idgen.New(cfg.Mock.IDStrategy))
	memory.Seed(store, time.Now())

	stub := integration.NewStub(zapLogger)
	delivery := services.NewDirectDelivery(services.Integrations{OTP: stub, KYC: stub, Payout: stub})
	rt := usecase.Runtime{
		LatencyScale: cfg.Mock.LatencyScale,
		NotFound:     usecase.ParsePolicy(cfg.Mock.NotFoundPolicy),
	}
	listings := memory.NewListingRepository(store)
	leads := memory.NewLeadRepository(store)

	shell := app.New(app.Services{
		Auth: authUC.New(memory.NewUserRepository(store), memory.NewSessionRepository(store, cfg.JWT.SessionTTL), delivery, rt,
			authUC.Config{OTPCode: cfg.Mock.OTPCode, JWTSecret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer, SessionTTL: cfg.JWT.SessionTTL},
			zapLogger),
		Listings:    listingUC.New(listings, leads, rt, zapLogger),
		Chat:        chatUC.New(memory.NewChatRepository(store), rt, zapLogger),
		KYC:         kycUC.New(memory.NewDocumentRepository(store), delivery, rt, zapLogger),
		Commissions: commissionUC.New(memory.NewCommissionRepository(store), delivery, rt, zapLogger),
		Visits:      visitUC.New(memory.NewVisitRepository(store), listings, rt, zapLogger),
		Leads:       leadUC.New(leads, listings, rt, zapLogger),
		Dialer:      stub,
	}, zapLogger)

	if err := run(context.Background(), shell, cfg.Mock.OTPCode, zapLogger); err != nil {
		zapLogger.Fatal("walkthrough failed", zap.Error(err))
	}
	zapLogger.Info("walkthrough finished", zap.Any("store", store.Stats()))
}

func run(ctx context.Context, shell *app.App, otp string, lg *zap.Logger) error {
	nav := shell.Navigation()
	step := func(action string) {
		lg.Info(action, zap.String("screen", string(nav.Current().Name())), zap.Int("depth", nav.Len()))
	}

	if err := shell.FinishSplash(); err != nil {
		return err
	}
	step("splash finished")
	if err := shell.SelectRole(domain.RoleBuyer); err != nil {
		return err
	}
	if _, err := shell.RequestOTP(ctx, "buyer@example.com"); err != nil {
		return err
	}
	if _, err := shell.Login(ctx, "buyer@example.com", otp); err != nil {
		return err
	}
	step("buyer signed in")

	feed, err := shell.Browse(ctx, domain.ListingFilter{})
	if err != nil {
		return err
	}
	if len(feed) == 0 {
		return domain.NewError(domain.ErrCodeNotFound, "no listings to browse")
	}
	if err := shell.OpenListing(feed[0]); err != nil {
		return err
	}
	step("listing opened")
	if _, err := shell.Call(ctx); err != nil {
		return err
	}
	if err := shell.OpenVisitScheduler(); err != nil {
		return err
	}
	visitID, err := shell.ScheduleVisit(ctx, time.Now().Add(24*time.Hour).Format(time.RFC3339))
	if err != nil {
		return err
	}
	step("visit scheduled")
	loc := feed[0].Location
	if _, err := shell.CheckIn(ctx, visitID, loc.Lat, loc.Lng); err != nil {
		return err
	}
	shell.Back()
	if err := shell.OpenChat(feed[0]); err != nil {
		return err
	}
	if err := shell.SendChat(ctx, "Is the price negotiable?"); err != nil {
		return err
	}
	step("message sent")
	if _, err := shell.UploadDocument(ctx, "Aadhaar", "file:///aadhaar.jpg"); err != nil {
		return err
	}
	commissionID, err := shell.LogCommission(ctx, 100000, "Noida")
	if err != nil {
		return err
	}
	return shell.RequestPayout(ctx, commissionID)
}
