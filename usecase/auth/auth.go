package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// DefaultOTPCode is the sentinel every mock OTP verification accepts.
const DefaultOTPCode = "123456"

type Config struct {
	OTPCode    string
	JWTSecret  string
	Issuer     string
	SessionTTL time.Duration
}

// OTPResult mirrors what an SMS/email gateway acknowledges.
type OTPResult struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

type identifierInput struct {
	Identifier string `validate:"required"`
}

type LoginInput struct {
	Identifier string      `json:"identifier" validate:"required"`
	Role       domain.Role `json:"role" validate:"required"`
}

type AuthenticateInput struct {
	Identifier string      `json:"identifier" validate:"required"`
	Code       string      `json:"code" validate:"required"`
	Role       domain.Role `json:"role" validate:"required"`
}

// Result is returned after a completed OTP login.
type Result struct {
	User    *domain.User    `json:"user"`
	Session *domain.Session `json:"session"`
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	outbox   usecase.IntegrationOutbox
	rt       usecase.Runtime
	cfg      Config
	logger   *zap.Logger
}

func New(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	outbox usecase.IntegrationOutbox,
	rt usecase.Runtime,
	cfg Config,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OTPCode == "" {
		cfg.OTPCode = DefaultOTPCode
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		outbox:   outbox,
		rt:       rt,
		cfg:      cfg,
		logger:   logger,
	}
}

// SendOTP always succeeds and answers with the fixed code. Delivery to the
// identifier goes through the integration outbox when one is configured.
func (uc *UseCase) SendOTP(ctx context.Context, identifier string) (*OTPResult, error) {
	if err := usecase.Validate(identifierInput{Identifier: identifier}, "identifier is required"); err != nil {
		return nil, err
	}
	if err := uc.rt.Simulate(ctx, usecase.OpSendOTP); err != nil {
		return nil, err
	}
	if uc.outbox != nil {
		if err := uc.outbox.DeliverOTP(ctx, identifier, uc.cfg.OTPCode); err != nil {
			uc.logger.Warn("otp delivery not queued", zap.String("identifier", identifier), zap.Error(err))
		}
	}
	return &OTPResult{Success: true, Code: uc.cfg.OTPCode}, nil
}

// VerifyOTP succeeds iff code matches the sentinel.
func (uc *UseCase) VerifyOTP(ctx context.Context, identifier, code string) (bool, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpVerifyOTP); err != nil {
		return false, err
	}
	return code == uc.cfg.OTPCode, nil
}

// LoginOrRegister returns the user owning identifier, creating it with default
// KYC state and service area on first sight. Calls are idempotent per identifier.
func (uc *UseCase) LoginOrRegister(ctx context.Context, in LoginInput) (*domain.User, error) {
	if err := usecase.Validate(in, "invalid login"); err != nil {
		return nil, err
	}
	if !in.Role.IsValid() {
		return nil, domain.NewValidationError("unknown role", "Role")
	}
	if err := uc.rt.Simulate(ctx, usecase.OpLoginOrRegister); err != nil {
		return nil, err
	}

	existing, err := uc.users.GetByIdentifier(ctx, in.Identifier)
	if err == nil {
		return existing, nil
	}
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	user := &domain.User{
		Identifier:   in.Identifier,
		Role:         in.Role,
		Name:         string(in.Role) + " " + in.Identifier,
		Ratings:      []int{},
		KYCStatus:    domain.KYCPending,
		ServiceAreas: []string{domain.DefaultServiceArea},
		CreatedAt:    uc.rt.Now(),
	}
	created, err := uc.users.Create(ctx, user)
	if errors.Is(err, domain.ErrIdentifierTaken) {
		// lost a race with a concurrent registration of the same identifier
		return uc.users.GetByIdentifier(ctx, in.Identifier)
	}
	if err != nil {
		return nil, err
	}
	uc.logger.Info("user registered", zap.String("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

// Authenticate verifies the OTP, signs the user in and issues a session.
func (uc *UseCase) Authenticate(ctx context.Context, in AuthenticateInput) (*Result, error) {
	if err := usecase.Validate(in, "invalid credentials"); err != nil {
		return nil, err
	}
	ok, err := uc.VerifyOTP(ctx, in.Identifier, in.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidOTP
	}
	user, err := uc.LoginOrRegister(ctx, LoginInput{Identifier: in.Identifier, Role: in.Role})
	if err != nil {
		return nil, err
	}
	session, err := uc.IssueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Session: session}, nil
}

// IssueSession signs a bearer token for user and stores the session.
func (uc *UseCase) IssueSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}
	now := uc.rt.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.SessionTTL),
	}

	token, err := uc.sign(session)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "sign session token", err)
	}
	session.Token = token

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *UseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(uc.rt.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (uc *UseCase) RevokeSession(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) sign(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    session.UserID,
		"role":       string(session.Role),
		"session_id": session.ID,
		"iat":        session.CreatedAt.Unix(),
		"exp":        session.ExpiresAt.Unix(),
	}
	if uc.cfg.Issuer != "" {
		claims["iss"] = uc.cfg.Issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.JWTSecret))
}
