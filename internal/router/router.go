package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/atharsaifi001-eng/NEAT-RE/api/handler"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Listing    *apiHandler.ListingHandler
	Chat       *apiHandler.ChatHandler
	KYC        *apiHandler.KYCHandler
	Commission *apiHandler.CommissionHandler
	Visit      *apiHandler.VisitHandler
	Lead       *apiHandler.LeadHandler
	Health     *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	if handlers.Health != nil {
		r.GET("/health", handlers.Health.Check)
	}

	// Auth routes
	r.POST("/api/v1/auth/otp", handlers.Auth.SendOTP)
	r.POST("/api/v1/auth/verify", handlers.Auth.Verify)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)

	// Public listing reads
	r.GET("/api/v1/listings", handlers.Listing.List)
	r.GET("/api/v1/listings/{id}", handlers.Listing.Get)

	// Protected routes
	r.POST("/api/v1/listings", authMiddleware(handlers.Listing.Create))
	r.PUT("/api/v1/listings/{id}/boost", authMiddleware(handlers.Listing.Boost))

	r.GET("/api/v1/chats/{room}", authMiddleware(handlers.Chat.History))
	r.POST("/api/v1/chats/{room}", authMiddleware(handlers.Chat.Send))

	r.POST("/api/v1/documents", authMiddleware(handlers.KYC.Upload))
	r.GET("/api/v1/documents", authMiddleware(handlers.KYC.List))

	r.POST("/api/v1/commissions", authMiddleware(handlers.Commission.Record))
	r.GET("/api/v1/commissions", authMiddleware(handlers.Commission.List))
	r.POST("/api/v1/commissions/{id}/payout", authMiddleware(handlers.Commission.Payout))

	r.POST("/api/v1/visits", authMiddleware(handlers.Visit.Schedule))
	r.GET("/api/v1/visits", authMiddleware(handlers.Visit.List))
	r.POST("/api/v1/visits/{id}/checkin", authMiddleware(handlers.Visit.CheckIn))

	r.GET("/api/v1/leads", authMiddleware(handlers.Lead.List))
	r.POST("/api/v1/leads/auto-assign", authMiddleware(handlers.Lead.AutoAssign))

	return r
}
